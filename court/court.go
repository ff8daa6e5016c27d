package court

// go generate: mockery --name Service

import (
	"context"
	"errors"
	"math/rand"
	"strings"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"github.com/bearcourt/bear-court-api/databases"
	"github.com/bearcourt/bear-court-api/models"
	"github.com/bearcourt/bear-court-api/oracle"
)

const (
	caseCodeAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	caseCodeLength   = 6
	// createAttempts bounds retries when a freshly rolled case code collides
	createAttempts = 5
)

// Service is the case lifecycle surface consumed by the HTTP handlers
type Service interface {
	CreateCase(ctx context.Context, role, uid string) (*models.Case, error)
	GetCase(ctx context.Context, id string) (*models.Case, error)
	ClaimRole(ctx context.Context, id, role, uid string) (*models.Case, error)
	SubmitStatement(ctx context.Context, id, uid, content string) (*models.Case, error)
	Adjudicate(ctx context.Context, id, uid string) (*models.Case, error)
	FileObjection(ctx context.Context, id, uid, content string) (*models.Case, error)
	RecordFeedback(ctx context.Context, id, uid string, like bool) (*models.Case, error)
	Reset(ctx context.Context, id string) (*models.Case, error)
	Subscribe(ctx context.Context, id string) (*Subscription, error)
}

// Court owns every transition of the case lifecycle. All collaborators are
// injected at construction; nothing here reaches for ambient globals.
type Court struct {
	Cases  databases.CaseDatabase
	Stats  databases.StatsDatabase
	Oracle oracle.Client
	Guard  *Guard
	Broker *Broker

	pubMu    sync.Mutex
	pubLocks map[string]*sync.Mutex
}

// New wires a Court from its collaborators
func New(cases databases.CaseDatabase, stats databases.StatsDatabase, oc oracle.Client, guard *Guard, broker *Broker) *Court {
	return &Court{
		Cases:    cases,
		Stats:    stats,
		Oracle:   oc,
		Guard:    guard,
		Broker:   broker,
		pubLocks: make(map[string]*sync.Mutex),
	}
}

// CreateCase opens a fresh case with the creator seated in the chosen role
func (c *Court) CreateCase(ctx context.Context, role, uid string) (*models.Case, error) {
	if role != models.RolePlaintiff && role != models.RoleDefendant {
		return nil, models.NewAPIError(models.ErrPreconditionFailed, "unknown role "+role, nil)
	}

	for attempt := 0; attempt < createAttempts; attempt++ {
		doc := &models.Case{
			ID:        newCaseCode(),
			CreatedBy: uid,
			Status:    models.CaseStatusWaiting,
			CreatedAt: time.Now().UnixMilli(),
		}
		holder := uid
		if role == models.RolePlaintiff {
			doc.SideA.UID = &holder
		} else {
			doc.SideB.UID = &holder
		}

		_, err := c.Cases.InsertOne(ctx, doc)
		if err == nil {
			mu := c.caseLock(doc.ID)
			mu.Lock()
			c.Broker.Publish(*doc)
			mu.Unlock()
			return doc, nil
		}
		if !mongo.IsDuplicateKeyError(err) {
			return nil, models.NewAPIError(models.ErrStoreUnavailable, "failed to create case", err)
		}
		zap.S().Debugw("case code collision, rerolling", "caseId", doc.ID)
	}
	return nil, models.NewAPIError(models.ErrStoreUnavailable, "could not allocate a fresh case code", nil)
}

// GetCase fetches a case by its code
func (c *Court) GetCase(ctx context.Context, id string) (*models.Case, error) {
	return c.loadCase(ctx, id)
}

// ClaimRole seats uid in the requested role. Claiming a seat you already hold
// is a no-op; claiming a seat someone else holds is rejected without mutation.
func (c *Court) ClaimRole(ctx context.Context, id, role, uid string) (*models.Case, error) {
	field, err := sideField(role)
	if err != nil {
		return nil, err
	}
	courtCase, err := c.loadCase(ctx, id)
	if err != nil {
		return nil, err
	}

	side, other := courtCase.SideA, courtCase.SideB
	if field == "sideB" {
		side, other = courtCase.SideB, courtCase.SideA
	}
	if side.HeldBy(uid) {
		return courtCase, nil
	}
	if other.HeldBy(uid) {
		return nil, models.NewAPIError(models.ErrPreconditionFailed, "you already hold the opposite seat", nil)
	}

	res, err := c.Cases.UpdateOne(ctx,
		bson.M{"_id": courtCase.ID, field + ".uid": nil},
		bson.M{"$set": bson.M{field + ".uid": uid}},
	)
	if err != nil {
		return nil, models.NewAPIError(models.ErrStoreUnavailable, "failed to claim role", err)
	}
	if res.MatchedCount() == 0 {
		// lost the race; the seat was taken between the read and the write
		current, err := c.loadCase(ctx, id)
		if err != nil {
			return nil, err
		}
		currentSide := current.SideA
		if field == "sideB" {
			currentSide = current.SideB
		}
		if currentSide.HeldBy(uid) {
			return current, nil
		}
		return nil, models.NewAPIError(models.ErrPreconditionFailed, "that seat is already taken", nil)
	}
	return c.publish(ctx, courtCase.ID)
}

// SubmitStatement writes a side's one-shot statement and marks it submitted
func (c *Court) SubmitStatement(ctx context.Context, id, uid, content string) (*models.Case, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, models.NewAPIError(models.ErrPreconditionFailed, "statement is empty", nil)
	}

	courtCase, err := c.loadCase(ctx, id)
	if err != nil {
		return nil, err
	}
	role := courtCase.RoleOf(uid)
	if role == "" {
		return nil, models.NewAPIError(models.ErrPreconditionFailed, "you do not hold a seat in this case", nil)
	}
	field := "sideA"
	submitted := courtCase.SideA.Submitted
	if role == "B" {
		field = "sideB"
		submitted = courtCase.SideB.Submitted
	}
	if submitted {
		return nil, models.NewAPIError(models.ErrPreconditionFailed, "statement already submitted", nil)
	}

	res, err := c.Cases.UpdateOne(ctx,
		bson.M{"_id": courtCase.ID, field + ".uid": uid, field + ".submitted": false},
		bson.M{"$set": bson.M{field + ".content": content, field + ".submitted": true}},
	)
	if err != nil {
		return nil, models.NewAPIError(models.ErrStoreUnavailable, "failed to submit statement", err)
	}
	if res.MatchedCount() == 0 {
		return nil, models.NewAPIError(models.ErrPreconditionFailed, "statement already submitted", nil)
	}
	return c.publish(ctx, courtCase.ID)
}

// Adjudicate sends the case to the oracle. With a pending objection the call
// runs in re-judgment mode and replaces the prior verdict; otherwise it
// produces the first verdict.
func (c *Court) Adjudicate(ctx context.Context, id, uid string) (*models.Case, error) {
	courtCase, err := c.loadCase(ctx, id)
	if err != nil {
		return nil, err
	}
	if courtCase.RoleOf(uid) == "" {
		return nil, models.NewAPIError(models.ErrPreconditionFailed, "only a participant may request judgment", nil)
	}
	return c.judge(ctx, courtCase)
}

// FileObjection records the one-time supplementary statement and immediately
// triggers re-adjudication
func (c *Court) FileObjection(ctx context.Context, id, uid, content string) (*models.Case, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, models.NewAPIError(models.ErrPreconditionFailed, "objection is empty", nil)
	}

	courtCase, err := c.loadCase(ctx, id)
	if err != nil {
		return nil, err
	}
	if courtCase.Verdict == nil {
		return nil, models.NewAPIError(models.ErrPreconditionFailed, "there is no verdict to object to", nil)
	}
	if courtCase.PendingObjection() {
		return nil, models.NewAPIError(models.ErrPreconditionFailed, "an objection is already pending", nil)
	}
	role := courtCase.RoleOf(uid)
	if role == "" {
		return nil, models.NewAPIError(models.ErrPreconditionFailed, "you do not hold a seat in this case", nil)
	}

	objection := models.Objection{
		UID:       uid,
		Role:      role,
		Content:   content,
		Status:    models.ObjectionPending,
		CreatedAt: time.Now().UnixMilli(),
	}
	res, err := c.Cases.UpdateOne(ctx,
		bson.M{
			"_id":     courtCase.ID,
			"verdict": bson.M{"$ne": nil},
			"$or": []bson.M{
				{"objection": nil},
				{"objection.status": models.ObjectionResolved},
			},
		},
		bson.M{"$set": bson.M{"objection": objection}},
	)
	if err != nil {
		return nil, models.NewAPIError(models.ErrStoreUnavailable, "failed to file objection", err)
	}
	if res.MatchedCount() == 0 {
		return nil, models.NewAPIError(models.ErrPreconditionFailed, "an objection is already pending", nil)
	}

	snapshot, err := c.publish(ctx, courtCase.ID)
	if err != nil {
		return nil, err
	}
	return c.judge(ctx, snapshot)
}

// RecordFeedback stores a single like/dislike on the verdict and bumps the
// global tally. Repeat votes are no-ops.
func (c *Court) RecordFeedback(ctx context.Context, id, uid string, like bool) (*models.Case, error) {
	courtCase, err := c.loadCase(ctx, id)
	if err != nil {
		return nil, err
	}
	if courtCase.Verdict == nil {
		return nil, models.NewAPIError(models.ErrPreconditionFailed, "there is no verdict to rate", nil)
	}
	if courtCase.Verdict.Feedback != "" {
		return courtCase, nil
	}

	value := models.FeedbackDislike
	statField := "dislikes"
	if like {
		value = models.FeedbackLike
		statField = "likes"
	}

	res, err := c.Cases.UpdateOne(ctx,
		bson.M{"_id": courtCase.ID, "verdict": bson.M{"$ne": nil}, "verdict.feedback": nil},
		bson.M{"$set": bson.M{"verdict.feedback": value}},
	)
	if err != nil {
		return nil, models.NewAPIError(models.ErrStoreUnavailable, "failed to record feedback", err)
	}

	// only the vote that actually landed may touch the global tally
	if res.MatchedCount() > 0 {
		_, err = c.Stats.UpdateOne(ctx,
			bson.M{"_id": models.GlobalStatsID},
			bson.M{"$inc": bson.M{statField: 1}},
			options.Update().SetUpsert(true),
		)
		if err != nil {
			zap.S().Errorw("failed to bump global stats", "caseId", courtCase.ID, "error", err)
		}
	}
	return c.publish(ctx, courtCase.ID)
}

// Reset clears verdict, submissions and objection while keeping the seats.
// Not exposed to normal users; the handler gates it to non-production envs.
func (c *Court) Reset(ctx context.Context, id string) (*models.Case, error) {
	courtCase, err := c.loadCase(ctx, id)
	if err != nil {
		return nil, err
	}
	_, err = c.Cases.UpdateOne(ctx,
		bson.M{"_id": courtCase.ID},
		bson.M{"$set": bson.M{
			"verdict":         nil,
			"status":          models.CaseStatusWaiting,
			"objection":       nil,
			"sideA.content":   "",
			"sideA.submitted": false,
			"sideB.content":   "",
			"sideB.submitted": false,
		}},
	)
	if err != nil {
		return nil, models.NewAPIError(models.ErrStoreUnavailable, "failed to reset case", err)
	}
	return c.publish(ctx, courtCase.ID)
}

// Subscribe validates the case exists and returns its snapshot feed
func (c *Court) Subscribe(ctx context.Context, id string) (*Subscription, error) {
	courtCase, err := c.loadCase(ctx, id)
	if err != nil {
		return nil, err
	}
	return c.Broker.Subscribe(courtCase.ID), nil
}

// judge runs one adjudication round under the guard and writes the verdict
// back with a compare-and-set. A pending objection switches the round into
// re-judgment mode.
func (c *Court) judge(ctx context.Context, courtCase *models.Case) (snapshot *models.Case, err error) {
	if !courtCase.BothSubmitted() {
		return nil, models.NewAPIError(models.ErrPreconditionFailed, "both statements must be submitted first", nil)
	}
	rejudge := courtCase.PendingObjection()
	if !rejudge && courtCase.Verdict != nil {
		return nil, models.NewAPIError(models.ErrPreconditionFailed, "the case is already adjudicated", nil)
	}

	gctx, release, err := c.Guard.Begin(ctx, courtCase.ID)
	if err != nil {
		return nil, err
	}
	defer func() { release(err) }()

	req := oracle.Request{
		StatementA: courtCase.SideA.Content,
		StatementB: courtCase.SideB.Content,
	}
	if rejudge {
		req.Objection = courtCase.Objection.Content
	}

	verdict, err := c.Oracle.Judge(gctx, req)
	if err != nil {
		if models.KindOf(err) == models.ErrAdjudicationRateLimited {
			c.Guard.ReportRateLimited(courtCase.ID)
		}
		if gctx.Err() != nil {
			return nil, models.NewAPIError(models.ErrPreconditionFailed, "adjudication superseded by a newer request", gctx.Err())
		}
		return nil, err
	}
	// a superseded round must never write its verdict
	if gctx.Err() != nil {
		return nil, models.NewAPIError(models.ErrPreconditionFailed, "adjudication superseded by a newer request", gctx.Err())
	}

	filter := bson.M{"_id": courtCase.ID, "sideA.submitted": true, "sideB.submitted": true}
	set := bson.M{"verdict": verdict, "status": models.CaseStatusFinished}
	if rejudge {
		filter["objection.status"] = models.ObjectionPending
		set["objection.status"] = models.ObjectionResolved
	} else {
		filter["verdict"] = nil
	}

	res, err := c.Cases.UpdateOne(gctx, filter, bson.M{"$set": set})
	if err != nil {
		return nil, models.NewAPIError(models.ErrStoreUnavailable, "failed to write verdict", err)
	}
	if res.MatchedCount() == 0 {
		return nil, models.NewAPIError(models.ErrPreconditionFailed, "the case changed while judgment was in flight", nil)
	}

	zap.S().Infow("verdict recorded",
		"caseId", courtCase.ID,
		"rejudge", rejudge,
	)
	return c.publish(ctx, courtCase.ID)
}

// publish reloads the document and fans the fresh snapshot out to subscribers.
// Reload and publish run under the per-case lock so snapshots are delivered in
// write order: a subscriber never sees an older snapshot after a newer one.
func (c *Court) publish(ctx context.Context, id string) (*models.Case, error) {
	mu := c.caseLock(id)
	mu.Lock()
	defer mu.Unlock()

	snapshot, err := c.loadCase(ctx, id)
	if err != nil {
		return nil, err
	}
	c.Broker.Publish(*snapshot)
	return snapshot, nil
}

// caseLock returns the mutex serializing publication for one case
func (c *Court) caseLock(id string) *sync.Mutex {
	c.pubMu.Lock()
	defer c.pubMu.Unlock()

	mu := c.pubLocks[id]
	if mu == nil {
		mu = &sync.Mutex{}
		c.pubLocks[id] = mu
	}
	return mu
}

func (c *Court) loadCase(ctx context.Context, id string) (*models.Case, error) {
	code := strings.ToUpper(strings.TrimSpace(id))
	courtCase, err := c.Cases.FindOne(ctx, bson.M{"_id": code})
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, models.NewAPIError(models.ErrInvalidCaseCode, "case "+code+" does not exist", err)
		}
		return nil, models.NewAPIError(models.ErrStoreUnavailable, "failed to load case", err)
	}
	return courtCase, nil
}

func sideField(role string) (string, error) {
	switch role {
	case models.RolePlaintiff:
		return "sideA", nil
	case models.RoleDefendant:
		return "sideB", nil
	default:
		return "", models.NewAPIError(models.ErrPreconditionFailed, "unknown role "+role, nil)
	}
}

func newCaseCode() string {
	b := make([]byte, caseCodeLength)
	for i := range b {
		b[i] = caseCodeAlphabet[rand.Intn(len(caseCodeAlphabet))]
	}
	return string(b)
}
