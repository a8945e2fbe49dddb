package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/flowenv/flowenv/model"
	"github.com/flowenv/flowenv/service/dao"
)

func TestService(t *testing.T) {
	svc := New()
	ctx := context.Background()

	workflow := model.NewWorkflow("member_eligibility")
	assert.NoError(t, svc.Save(ctx, workflow))

	loaded, err := svc.Load(ctx, "member_eligibility")
	assert.NoError(t, err)
	assert.Equal(t, workflow, loaded)

	_, err = svc.Load(ctx, "unknown")
	assert.ErrorIs(t, err, dao.ErrNotFound)

	list, err := svc.List(ctx)
	assert.NoError(t, err)
	assert.Len(t, list, 1)

	assert.NoError(t, svc.Delete(ctx, "member_eligibility"))
	_, err = svc.Load(ctx, "member_eligibility")
	assert.ErrorIs(t, err, dao.ErrNotFound)
}

func TestService_Validation(t *testing.T) {
	svc := New()
	ctx := context.Background()

	assert.ErrorIs(t, svc.Save(ctx, nil), dao.ErrNilEntity)
	assert.ErrorIs(t, svc.Save(ctx, model.NewWorkflow("")), dao.ErrInvalidID)
	_, err := svc.Load(ctx, "")
	assert.ErrorIs(t, err, dao.ErrInvalidID)
	assert.ErrorIs(t, svc.Delete(ctx, "missing"), dao.ErrNotFound)
}

func TestService_ListFilters(t *testing.T) {
	svc := New()
	ctx := context.Background()
	assert.NoError(t, svc.Save(ctx, model.NewWorkflow("member_eligibility")))
	assert.NoError(t, svc.Save(ctx, model.NewWorkflow("payment_processor")))

	list, err := svc.List(ctx, dao.NewParameter("Name", "payment_processor"))
	assert.NoError(t, err)
	assert.Len(t, list, 1)
	assert.Equal(t, "payment_processor", list[0].Name)

	list, err = svc.List(ctx, &dao.Parameter{Name: "NamePrefix", Value: "member_"})
	assert.NoError(t, err)
	assert.Len(t, list, 1)
	assert.Equal(t, "member_eligibility", list[0].Name)
}
