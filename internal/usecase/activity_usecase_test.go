package usecase

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/yoxaz-verse/obaol-rate-service/internal/domain"
	activitydto "github.com/yoxaz-verse/obaol-rate-service/internal/usecase/dto/activity"
)

func newActivityUsecaseForTest() (*DefaultActivityUsecase, *fakeActivityRepo, *fakeActivityStatusRepo) {
	activityRepo := newFakeActivityRepo()
	statusRepo := newFakeActivityStatusRepo()
	uc := NewDefaultActivityUsecase(activityRepo, statusRepo, NewMemoryStatusCache(), nil, nil)
	return uc, activityRepo, statusRepo
}

func timePtr(t time.Time) *time.Time { return &t }

func TestCreateActivityStatusDerivation(t *testing.T) {
	ctx := context.Background()
	manager := domain.Identity{UserID: "mgr-1", Role: domain.RoleActivityManager}
	target := timePtr(time.Now().Add(48 * time.Hour))
	forecast := timePtr(time.Now().Add(24 * time.Hour))

	tests := []struct {
		name  string
		input *activitydto.CreateActivityInput
		want  string
	}{
		{
			"no target operation date wins over everything",
			&activitydto.CreateActivityInput{ProjectID: "proj-1", Status: domain.ActivityStatusSubmitted},
			domain.ActivityStatusNoTarget,
		},
		{
			"target without forecast is to be planned",
			&activitydto.CreateActivityInput{ProjectID: "proj-1", TargetOperationDate: target},
			domain.ActivityStatusToBePlanned,
		},
		{
			"planned without workers is to be assigned",
			&activitydto.CreateActivityInput{ProjectID: "proj-1", TargetOperationDate: target, ForecastDate: forecast},
			domain.ActivityStatusToBeAssigned,
		},
		{
			"terminal label passes through once staffed",
			&activitydto.CreateActivityInput{ProjectID: "proj-1", TargetOperationDate: target, ForecastDate: forecast, WorkerIDs: []string{"w1"}, Status: domain.ActivityStatusSubmitted},
			domain.ActivityStatusSubmitted,
		},
		{
			"fully staffed with no transition is in progress",
			&activitydto.CreateActivityInput{ProjectID: "proj-1", TargetOperationDate: target, ForecastDate: forecast, WorkerIDs: []string{"w1"}},
			domain.ActivityStatusInProgress,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, _, statusRepo := newActivityUsecaseForTest()
			activity, err := uc.CreateActivity(ctx, manager, tt.input)
			require.NoError(t, err)
			require.Equal(t, statusRepo.id(tt.want), activity.StatusID)
		})
	}
}

func TestCreateActivityTitle(t *testing.T) {
	ctx := context.Background()
	uc, _, _ := newActivityUsecaseForTest()

	a1, err := uc.CreateActivity(ctx, domain.Identity{}, &activitydto.CreateActivityInput{ProjectID: "proj-1"})
	require.NoError(t, err)
	a2, err := uc.CreateActivity(ctx, domain.Identity{}, &activitydto.CreateActivityInput{ProjectID: "proj-1"})
	require.NoError(t, err)

	require.True(t, strings.HasPrefix(a1.Title, "ACT-"))
	require.Len(t, a1.Title, len("ACT-")+8)
	require.NotEqual(t, a1.Title, a2.Title)
}

func TestUpdateActivity(t *testing.T) {
	ctx := context.Background()
	admin := domain.Identity{UserID: "admin-1", Role: domain.RoleAdmin}
	manager := domain.Identity{UserID: "mgr-1", Role: domain.RoleActivityManager}
	target := timePtr(time.Now().Add(48 * time.Hour))
	forecast := timePtr(time.Now().Add(24 * time.Hour))

	seedStaffed := func(repo *fakeActivityRepo, statusRepo *fakeActivityStatusRepo, statusName string) {
		repo.activities["act-1"] = &domain.Activity{
			ID:                  "act-1",
			ProjectID:           "proj-1",
			StatusID:            statusRepo.id(statusName),
			TargetOperationDate: target,
			ForecastDate:        forecast,
			WorkerIDs:           []string{"w1"},
		}
	}

	t.Run("derivation runs against the merged patch", func(t *testing.T) {
		uc, repo, statusRepo := newActivityUsecaseForTest()
		// stored activity has workers; the patch removes them
		seedStaffed(repo, statusRepo, domain.ActivityStatusInProgress)

		updated, err := uc.UpdateActivity(ctx, manager, "act-1", &activitydto.UpdateActivityInput{WorkerIDs: []string{}})
		require.NoError(t, err)
		require.Equal(t, statusRepo.id(domain.ActivityStatusToBeAssigned), updated.StatusID)
	})

	t.Run("status change records the previous status", func(t *testing.T) {
		uc, repo, statusRepo := newActivityUsecaseForTest()
		seedStaffed(repo, statusRepo, domain.ActivityStatusInProgress)

		updated, err := uc.UpdateActivity(ctx, manager, "act-1", &activitydto.UpdateActivityInput{Status: domain.ActivityStatusBlocked})
		require.NoError(t, err)
		require.Equal(t, statusRepo.id(domain.ActivityStatusBlocked), updated.StatusID)
		require.Equal(t, statusRepo.id(domain.ActivityStatusInProgress), updated.PreviousStatusID)
	})

	t.Run("admin unblock restores the previous status", func(t *testing.T) {
		uc, repo, statusRepo := newActivityUsecaseForTest()
		seedStaffed(repo, statusRepo, domain.ActivityStatusBlocked)
		repo.activities["act-1"].PreviousStatusID = statusRepo.id(domain.ActivityStatusInProgress)

		updated, err := uc.UpdateActivity(ctx, admin, "act-1", &activitydto.UpdateActivityInput{Unblock: true})
		require.NoError(t, err)
		require.Equal(t, statusRepo.id(domain.ActivityStatusInProgress), updated.StatusID)
	})

	t.Run("non-admin unblock derives in progress instead", func(t *testing.T) {
		uc, repo, statusRepo := newActivityUsecaseForTest()
		seedStaffed(repo, statusRepo, domain.ActivityStatusBlocked)
		repo.activities["act-1"].PreviousStatusID = statusRepo.id(domain.ActivityStatusInProgress)

		updated, err := uc.UpdateActivity(ctx, manager, "act-1", &activitydto.UpdateActivityInput{Unblock: true})
		require.NoError(t, err)
		require.Equal(t, statusRepo.id(domain.ActivityStatusInProgress), updated.StatusID)
	})

	t.Run("unblock without a stored previous status fails", func(t *testing.T) {
		uc, repo, statusRepo := newActivityUsecaseForTest()
		seedStaffed(repo, statusRepo, domain.ActivityStatusBlocked)

		_, err := uc.UpdateActivity(ctx, admin, "act-1", &activitydto.UpdateActivityInput{Unblock: true})
		require.True(t, domain.IsValidation(err))
	})

	t.Run("unchanged status leaves previousStatus alone", func(t *testing.T) {
		uc, repo, statusRepo := newActivityUsecaseForTest()
		seedStaffed(repo, statusRepo, domain.ActivityStatusInProgress)

		hours := 12.5
		updated, err := uc.UpdateActivity(ctx, manager, "act-1", &activitydto.UpdateActivityInput{HoursSpent: &hours})
		require.NoError(t, err)
		require.Equal(t, statusRepo.id(domain.ActivityStatusInProgress), updated.StatusID)
		require.Empty(t, updated.PreviousStatusID)
		require.Equal(t, 12.5, updated.HoursSpent)
	})
}

func TestDeleteActivity(t *testing.T) {
	ctx := context.Background()
	uc, repo, statusRepo := newActivityUsecaseForTest()
	repo.activities["act-1"] = &domain.Activity{ID: "act-1", ProjectID: "proj-1", StatusID: statusRepo.id(domain.ActivityStatusInProgress)}

	require.NoError(t, uc.DeleteActivity(ctx, domain.Identity{UserID: "admin-1", Role: domain.RoleAdmin}, "act-1"))

	_, err := uc.GetActivityByID(ctx, "act-1")
	require.ErrorIs(t, err, domain.ErrActivityNotFound)
}

func TestStatusCacheMemoization(t *testing.T) {
	cache := NewMemoryStatusCache()

	_, ok := cache.Get("In Progress")
	require.False(t, ok)

	cache.Set("In Progress", "status-1")
	id, ok := cache.Get("In Progress")
	require.True(t, ok)
	require.Equal(t, "status-1", id)
}
