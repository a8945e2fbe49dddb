package flowenv_test

import (
	"context"
	"embed"
	"testing"

	"github.com/stretchr/testify/assert"
	_ "github.com/viant/afs/embed"

	"github.com/flowenv/flowenv"
	"github.com/flowenv/flowenv/model"
	"github.com/flowenv/flowenv/service/event"
)

//go:embed testdata/*
var embedFS embed.FS

func TestService(t *testing.T) {
	srv := flowenv.New(
		flowenv.WithLoaderFsOptions(&embedFS),
		flowenv.WithLoaderBaseURL("embed:///testdata"),
	)
	ctx := context.Background()

	err := srv.PublishFromURL(ctx, "member_eligibility", "1.0.0", "member_eligibility_v1.yaml")
	assert.Nil(t, err)
	err = srv.PublishFromURL(ctx, "member_eligibility", "1.1.0", "member_eligibility_v2.yaml")
	assert.Nil(t, err)

	latest, found, err := srv.GetLatest(ctx, "member_eligibility")
	assert.Nil(t, err)
	assert.True(t, found)
	assert.True(t, model.String("https://prod.example.com").Equal(latest["API_URL"]))

	diff, err := srv.DiffEnv(ctx, "member_eligibility", "1.0.0", "1.1.0")
	assert.Nil(t, err)
	assert.Len(t, diff.Added, 1)
	assert.Len(t, diff.Removed, 1)
	assert.Len(t, diff.Changed, 2)
}

func TestService_PublishEvents(t *testing.T) {
	srv := flowenv.New()
	ctx := context.Background()

	config, err := model.NewEnvConfig(map[string]interface{}{"MODE": "dry_run"})
	assert.Nil(t, err)
	assert.Nil(t, srv.Publish(ctx, "claims_intake", "0.1.0", config))

	published, err := srv.Events().Consume(ctx)
	assert.Nil(t, err)
	if assert.NotNil(t, published) {
		assert.Equal(t, event.TypePublished, published.Context.EventType)
		assert.Equal(t, "claims_intake", published.Context.Workflow)
		assert.Equal(t, "0.1.0", published.Context.Version)
		assert.True(t, config.Equal(published.Data))
	}

	// a rejected publish mutates nothing and emits no event
	assert.Error(t, srv.Publish(ctx, "claims_intake", "0.1.0", config))
	latest, _, _ := srv.GetLatest(ctx, "claims_intake")
	assert.True(t, config.Equal(latest))
}

func TestService_Executor(t *testing.T) {
	srv := flowenv.New()
	ctx := context.Background()

	_, err := srv.Executor().Execute(ctx, "registry:publish", map[string]interface{}{
		"name":    "member_eligibility",
		"version": "1.0.0",
		"config":  map[string]interface{}{"min_age": 18},
	})
	assert.Nil(t, err)

	latest, found, err := srv.GetLatest(ctx, "member_eligibility")
	assert.Nil(t, err)
	assert.True(t, found)
	assert.True(t, model.Int(18).Equal(latest["min_age"]))
}
