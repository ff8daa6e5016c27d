package court

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	dbMocks "github.com/bearcourt/bear-court-api/databases/mocks"
	"github.com/bearcourt/bear-court-api/models"
	oracleMocks "github.com/bearcourt/bear-court-api/oracle/mocks"
)

func updateMatched(n int64) *dbMocks.UpdateResultHelper {
	res := &dbMocks.UpdateResultHelper{}
	res.On("MatchedCount").Return(n)
	return res
}

func TestPublishSerializesSnapshotsPerCase(t *testing.T) {
	snapshot := &models.Case{ID: "AAAAAA"}

	var inFlight, peak int32
	cases := &dbMocks.CaseDatabase{}
	cases.On("FindOne", mock.Anything, mock.Anything).Run(func(mock.Arguments) {
		cur := atomic.AddInt32(&inFlight, 1)
		for {
			p := atomic.LoadInt32(&peak)
			if cur <= p || atomic.CompareAndSwapInt32(&peak, p, cur) {
				break
			}
		}
		time.Sleep(5 * time.Millisecond)
		atomic.AddInt32(&inFlight, -1)
	}).Return(snapshot, nil)

	c := New(cases, &dbMocks.StatsDatabase{}, &oracleMocks.Client{}, NewGuard(), NewBroker())

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := c.publish(context.Background(), "AAAAAA")
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	// reload-and-publish sections for one case never overlap, so a snapshot
	// read before another write can never be delivered after it
	assert.Equal(t, int32(1), atomic.LoadInt32(&peak))
}
