package service

import (
	"testing"
	"time"

	"github.com/Zeel-InventIndia/KMS-On2cook-sub000/core/constants"
	coreEntity "github.com/Zeel-InventIndia/KMS-On2cook-sub000/core/entity"
	"github.com/Zeel-InventIndia/KMS-On2cook-sub000/modules/demo/entity"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func poolRequest(client string, status entity.DemoStatus, date time.Time) entity.DemoRequest {
	return entity.DemoRequest{
		ClientName: client,
		DemoDate:   date,
		Status:     status,
		BaseEntity: coreEntity.BaseEntity{ID: uuid.New()},
	}
}

func TestUnassignedPoolScenario(t *testing.T) {
	// Two pending demos: one rescheduled, one planned with a recipe attached
	// by its presales assignee. Both show up for everyone, date order.
	day1 := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	day2 := time.Date(2026, 3, 12, 0, 0, 0, 0, time.UTC)

	beta := poolRequest("Beta LLC", entity.StatusRescheduled, day1)
	acme := poolRequest("Acme Co.", entity.StatusPlanned, day2)
	acme.Assignee = "Priya"
	acme.Recipes = pq.StringArray{"Paella"}

	pool := UnassignedPool([]entity.DemoRequest{acme, beta}, constants.RoleHeadChef, "Chef Ramesh")
	require.Len(t, pool, 2)
	assert.Equal(t, "Beta LLC", pool[0].ClientName)
	assert.Equal(t, "Acme Co.", pool[1].ClientName)
}

func TestUnassignedPoolRescheduledAlwaysListed(t *testing.T) {
	req := poolRequest("Beta LLC", entity.StatusRescheduled, time.Now())

	for _, role := range []string{
		constants.RoleAdmin, constants.RoleHeadChef, constants.RolePresales,
		constants.RoleSales, constants.RoleCulinaryTeam,
	} {
		pool := UnassignedPool([]entity.DemoRequest{req}, role, "anyone")
		assert.Len(t, pool, 1, "role %s", role)
	}
}

func TestUnassignedPoolAssignedExcluded(t *testing.T) {
	rescheduled := poolRequest("Beta LLC", entity.StatusRescheduled, time.Now())
	rescheduled.SetAssignment(2, "01:00 PM - 03:00 PM", []string{"Amit"})
	cancelled := poolRequest("Gamma Inc", entity.StatusCancelled, time.Now())
	cancelled.SetAssignment(1, "09:00 AM - 11:00 AM", []string{"Manish"})
	planned := poolRequest("Acme Co.", entity.StatusPlanned, time.Now())
	planned.Recipes = pq.StringArray{"Paella"}
	planned.SetAssignment(3, "03:00 PM - 05:00 PM", nil)

	pool := UnassignedPool([]entity.DemoRequest{rescheduled, cancelled, planned}, constants.RoleHeadChef, "Chef Ramesh")
	assert.Empty(t, pool)
}

func TestUnassignedPoolCancelledUnassignedListed(t *testing.T) {
	req := poolRequest("Gamma Inc", entity.StatusCancelled, time.Now())
	pool := UnassignedPool([]entity.DemoRequest{req}, constants.RoleSales, "anyone")
	assert.Len(t, pool, 1)
}

func TestUnassignedPoolPlannedNeedsRecipes(t *testing.T) {
	bare := poolRequest("Acme Co.", entity.StatusPlanned, time.Now())
	bare.Assignee = "Priya"

	// without recipes only the assigned presales user sees it
	pool := UnassignedPool([]entity.DemoRequest{bare}, constants.RoleHeadChef, "Chef Ramesh")
	assert.Empty(t, pool)

	pool = UnassignedPool([]entity.DemoRequest{bare}, constants.RolePresales, "Priya")
	assert.Len(t, pool, 1)

	// a different presales user does not
	pool = UnassignedPool([]entity.DemoRequest{bare}, constants.RolePresales, "Kiran")
	assert.Empty(t, pool)

	// once a recipe lands, everyone sees it
	bare.Recipes = pq.StringArray{"Paella"}
	pool = UnassignedPool([]entity.DemoRequest{bare}, constants.RoleSales, "anyone")
	assert.Len(t, pool, 1)
}

func TestUnassignedPoolPresalesMatchIsCaseInsensitive(t *testing.T) {
	req := poolRequest("Acme Co.", entity.StatusPlanned, time.Now())
	req.Assignee = "priya"

	pool := UnassignedPool([]entity.DemoRequest{req}, "PreSales", "PRIYA")
	assert.Len(t, pool, 1)
}

func TestUnassignedPoolGivenAndUnknownExcluded(t *testing.T) {
	given := poolRequest("Acme Co.", entity.StatusGiven, time.Now())
	odd := poolRequest("Beta LLC", entity.DemoStatus("archived"), time.Now())

	pool := UnassignedPool([]entity.DemoRequest{given, odd}, constants.RoleAdmin, "anyone")
	assert.Empty(t, pool)
}

func TestUnassignedPoolSortedByDate(t *testing.T) {
	base := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	late := poolRequest("C", entity.StatusRescheduled, base.AddDate(0, 0, 5))
	early := poolRequest("A", entity.StatusRescheduled, base)
	mid := poolRequest("B", entity.StatusRescheduled, base.AddDate(0, 0, 2))

	pool := UnassignedPool([]entity.DemoRequest{late, early, mid}, constants.RoleHeadChef, "x")
	require.Len(t, pool, 3)
	assert.Equal(t, "A", pool[0].ClientName)
	assert.Equal(t, "B", pool[1].ClientName)
	assert.Equal(t, "C", pool[2].ClientName)
}
