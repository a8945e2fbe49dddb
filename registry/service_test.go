package registry

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/flowenv/flowenv/model"
	"github.com/flowenv/flowenv/model/version"
)

func qaConfig(t *testing.T, values map[string]interface{}) model.EnvConfig {
	t.Helper()
	config, err := model.NewEnvConfig(values)
	assert.NoError(t, err)
	return config
}

func TestService_PublishAndDiff(t *testing.T) {
	svc := New()
	ctx := context.Background()

	assert.NoError(t, svc.Publish(ctx, "member_eligibility", "1.0.0", qaConfig(t, map[string]interface{}{
		"API_URL":         "https://qa.example.com",
		"TIMEOUT_SECONDS": 10,
	})))
	assert.NoError(t, svc.Publish(ctx, "member_eligibility", "1.1.0", qaConfig(t, map[string]interface{}{
		"API_URL":         "https://qa.example.com",
		"TIMEOUT_SECONDS": 15,
		"CACHE_ENABLED":   true,
	})))

	diff, err := svc.DiffEnv(ctx, "member_eligibility", "1.0.0", "1.1.0")
	assert.NoError(t, err)
	assert.Len(t, diff.Added, 1)
	assert.True(t, diff.Added["CACHE_ENABLED"].Equal(model.Bool(true)))
	assert.Empty(t, diff.Removed)
	assert.Len(t, diff.Changed, 1)
	assert.True(t, diff.Changed["TIMEOUT_SECONDS"].From.Equal(model.Int(10)))
	assert.True(t, diff.Changed["TIMEOUT_SECONDS"].To.Equal(model.Int(15)))
}

func TestService_PublishRejectsNonMonotonic(t *testing.T) {
	svc := New()
	ctx := context.Background()

	assert.NoError(t, svc.Publish(ctx, "member_eligibility", "1.0.0", qaConfig(t, map[string]interface{}{"A": 1})))
	assert.NoError(t, svc.Publish(ctx, "member_eligibility", "1.1.0", qaConfig(t, map[string]interface{}{"A": 2})))

	testCases := []struct {
		description string
		version     string
	}{
		{description: "republish existing", version: "1.0.0"},
		{description: "equal to latest", version: "1.1.0"},
		{description: "lower than latest", version: "1.0.9"},
	}
	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			err := svc.Publish(ctx, "member_eligibility", tc.version, qaConfig(t, map[string]interface{}{"TEST": "value"}))
			assert.ErrorIs(t, err, ErrNonMonotonic)
		})
	}

	// History unchanged: still exactly 2 revisions.
	history, err := svc.History(ctx, "member_eligibility")
	assert.NoError(t, err)
	assert.Len(t, history, 2)
}

func TestService_PublishRejectsInvalidVersion(t *testing.T) {
	svc := New()
	ctx := context.Background()

	for _, literal := range []string{"1.0", "1.0.0.0", "a.b.c", "", "1.0.-1"} {
		err := svc.Publish(ctx, "member_eligibility", literal, qaConfig(t, map[string]interface{}{"A": 1}))
		assert.ErrorIs(t, err, version.ErrInvalid, literal)
	}

	_, ok, err := svc.GetLatest(ctx, "member_eligibility")
	assert.NoError(t, err)
	assert.False(t, ok, "failed publishes must leave no workflow behind")
}

func TestService_GetLatest(t *testing.T) {
	svc := New()
	ctx := context.Background()

	config, ok, err := svc.GetLatest(ctx, "unknown_workflow")
	assert.NoError(t, err, "soft miss must not error")
	assert.False(t, ok)
	assert.Nil(t, config)

	assert.NoError(t, svc.Publish(ctx, "member_eligibility", "1.0.0", qaConfig(t, map[string]interface{}{"TIMEOUT_SECONDS": 10})))
	assert.NoError(t, svc.Publish(ctx, "member_eligibility", "2.0.0", qaConfig(t, map[string]interface{}{"TIMEOUT_SECONDS": 20})))

	config, ok, err = svc.GetLatest(ctx, "member_eligibility")
	assert.NoError(t, err)
	assert.True(t, ok)
	assert.True(t, config["TIMEOUT_SECONDS"].Equal(model.Int(20)))
}

func TestService_GetLatestReturnsCopy(t *testing.T) {
	svc := New()
	ctx := context.Background()
	assert.NoError(t, svc.Publish(ctx, "member_eligibility", "1.0.0", qaConfig(t, map[string]interface{}{"A": 1})))

	config, ok, err := svc.GetLatest(ctx, "member_eligibility")
	assert.NoError(t, err)
	assert.True(t, ok)
	config["A"] = model.Int(99)

	again, _, err := svc.GetLatest(ctx, "member_eligibility")
	assert.NoError(t, err)
	assert.True(t, again["A"].Equal(model.Int(1)), "stored snapshots are immutable")
}

func TestService_DiffEnvNotFound(t *testing.T) {
	svc := New()
	ctx := context.Background()
	assert.NoError(t, svc.Publish(ctx, "member_eligibility", "1.0.0", qaConfig(t, map[string]interface{}{"A": 1})))

	_, err := svc.DiffEnv(ctx, "member_eligibility", "1.0.0", "99.99.99")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = svc.DiffEnv(ctx, "unknown_workflow", "1.0.0", "1.0.0")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = svc.DiffEnv(ctx, "member_eligibility", "1.0", "1.0.0")
	assert.ErrorIs(t, err, version.ErrInvalid)
}

func TestService_DiffEnvInverse(t *testing.T) {
	svc := New()
	ctx := context.Background()
	assert.NoError(t, svc.Publish(ctx, "member_eligibility", "1.0.0", qaConfig(t, map[string]interface{}{
		"REMOVED": "gone",
		"SHARED":  1,
	})))
	assert.NoError(t, svc.Publish(ctx, "member_eligibility", "1.1.0", qaConfig(t, map[string]interface{}{
		"ADDED":  true,
		"SHARED": 2,
	})))

	forward, err := svc.DiffEnv(ctx, "member_eligibility", "1.0.0", "1.1.0")
	assert.NoError(t, err)
	backward, err := svc.DiffEnv(ctx, "member_eligibility", "1.1.0", "1.0.0")
	assert.NoError(t, err)

	inverted := forward.Invert()
	assert.Equal(t, backward.Added, inverted.Added)
	assert.Equal(t, backward.Removed, inverted.Removed)
	assert.Equal(t, backward.Changed, inverted.Changed)
}

func TestService_DiffEnvSelfIsEmpty(t *testing.T) {
	svc := New()
	ctx := context.Background()
	assert.NoError(t, svc.Publish(ctx, "member_eligibility", "1.0.0", qaConfig(t, map[string]interface{}{"A": 1, "B": "x"})))

	diff, err := svc.DiffEnv(ctx, "member_eligibility", "1.0.0", "1.0.0")
	assert.NoError(t, err)
	assert.True(t, diff.IsEmpty())
}

func TestService_PublishSnapshotIsolation(t *testing.T) {
	svc := New()
	ctx := context.Background()

	config := qaConfig(t, map[string]interface{}{"A": 1})
	assert.NoError(t, svc.Publish(ctx, "member_eligibility", "1.0.0", config))
	// Mutating the caller's map after publish must not affect the snapshot.
	config["A"] = model.Int(2)

	stored, ok, err := svc.GetLatest(ctx, "member_eligibility")
	assert.NoError(t, err)
	assert.True(t, ok)
	assert.True(t, stored["A"].Equal(model.Int(1)))
}

func TestService_List(t *testing.T) {
	svc := New()
	ctx := context.Background()
	assert.NoError(t, svc.Publish(ctx, "member_eligibility", "1.0.0", qaConfig(t, map[string]interface{}{"A": 1})))
	assert.NoError(t, svc.Publish(ctx, "payment_processor", "1.0.0", qaConfig(t, map[string]interface{}{"B": 2})))

	workflows, err := svc.List(ctx)
	assert.NoError(t, err)
	assert.Len(t, workflows, 2)
}
