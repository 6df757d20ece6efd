package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/rudracore/client-portal/internal/models"
	"github.com/rudracore/client-portal/internal/storage"
	"github.com/rudracore/client-portal/internal/storage/mocks"

	"go.uber.org/mock/gomock"
)

func TestCreateProject(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockStorage := mocks.NewMockIStorage(ctrl)
	initTestLogger(t)

	projects := NewProjects(mockStorage)

	var captured models.Project
	mockStorage.EXPECT().AddProject(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, project models.Project) error {
			captured = project
			return nil
		})

	request := models.ProjectRequest{
		ProjectName: "Portfolio Site",
		Description: "5-page site",
		UILevel:     "Medium Level UI",
		Price:       349,
	}
	project, err := projects.CreateProject(context.Background(), testIdentity, request)
	if err != nil {
		t.Fatalf("Expected project, got error: %v", err)
	}

	if captured.UserID != testIdentity.UserID || captured.ClientEmail != testIdentity.Email || captured.ClientName != testIdentity.Name {
		t.Errorf("Owner fields not stamped from identity: %+v", captured)
	}
	if captured.Status != models.ProjectStatusPending || captured.Progress != 0 || captured.PaymentStatus != models.PaymentStatusPaid {
		t.Errorf("Unexpected lifecycle defaults: %+v", captured)
	}
	if !strings.HasPrefix(captured.ID, storage.ProjectKeyPrefix) {
		t.Errorf("Unexpected identifier: %q", captured.ID)
	}
	if project.ProjectName != "Portfolio Site" || project.UILevel != "Medium Level UI" || project.Price != 349 {
		t.Errorf("Unexpected project content: %+v", project)
	}
}

func TestCreateProjectStorageError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockStorage := mocks.NewMockIStorage(ctrl)
	initTestLogger(t)

	projects := NewProjects(mockStorage)

	storageErr := errors.New("failed to add project")
	mockStorage.EXPECT().AddProject(gomock.Any(), gomock.Any()).Return(storageErr)

	_, err := projects.CreateProject(context.Background(), testIdentity, models.ProjectRequest{
		ProjectName: "Portfolio Site", Description: "5-page site", UILevel: "Medium Level UI", Price: 349,
	})
	if !errors.Is(err, storageErr) {
		t.Errorf("Expected storage error, got: %v", err)
	}
}

func TestGetUserProjects(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockStorage := mocks.NewMockIStorage(ctrl)
	initTestLogger(t)

	projects := NewProjects(mockStorage)

	mockStorage.EXPECT().GetProjects(gomock.Any()).Return([]models.Project{
		{ID: "project_1_a", UserID: "user-1"},
		{ID: "project_2_b", UserID: "someone-else"},
	}, nil)

	got, err := projects.GetUserProjects(context.Background(), testIdentity)
	if err != nil {
		t.Fatalf("Expected projects, got error: %v", err)
	}
	if len(got) != 1 || got[0].UserID != testIdentity.UserID {
		t.Errorf("Expected only the caller's projects, got: %+v", got)
	}
}

func TestUpdateProject(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockStorage := mocks.NewMockIStorage(ctrl)
	initTestLogger(t)

	projects := NewProjects(mockStorage)

	status := models.ProjectStatusInProgress
	progress := 40
	stored := models.Project{
		ID:       "project_1_abc",
		UserID:   "user-1",
		Status:   models.ProjectStatusPending,
		Progress: 0,
	}

	testCases := []struct {
		TestName      string
		Request       models.ProjectUpdateRequest
		SetupMocks    func()
		Expected      *models.Project
		ExpectedError error
	}{
		{
			TestName: "Merge status and progress #1",
			Request:  models.ProjectUpdateRequest{Status: &status, Progress: &progress},
			SetupMocks: func() {
				record := stored
				mockStorage.EXPECT().GetProject(gomock.Any(), stored.ID).Return(&record, nil)
				mockStorage.EXPECT().SaveProject(gomock.Any(), gomock.Any()).Return(nil)
			},
			Expected: &models.Project{ID: stored.ID, UserID: stored.UserID, Status: status, Progress: progress},
		},
		{
			TestName: "Absent fields are left untouched #2",
			Request:  models.ProjectUpdateRequest{},
			SetupMocks: func() {
				record := stored
				mockStorage.EXPECT().GetProject(gomock.Any(), stored.ID).Return(&record, nil)
				mockStorage.EXPECT().SaveProject(gomock.Any(), record).Return(nil)
			},
			Expected: &stored,
		},
		{
			TestName: "Unknown identifier #3",
			Request:  models.ProjectUpdateRequest{Status: &status},
			SetupMocks: func() {
				mockStorage.EXPECT().GetProject(gomock.Any(), stored.ID).Return(nil, storage.ErrNotFound)
			},
			ExpectedError: ErrProjectNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.TestName, func(t *testing.T) {
			tc.SetupMocks()

			got, err := projects.UpdateProject(context.Background(), stored.ID, tc.Request)
			if tc.ExpectedError != nil {
				if !errors.Is(err, tc.ExpectedError) {
					t.Errorf("Expected error: %v, got: %v", tc.ExpectedError, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Expected project, got error: %v", err)
			}
			if diff := cmp.Diff(tc.Expected, got); diff != "" {
				t.Errorf("Project mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestUpdateProjectAcceptsArbitraryValues(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockStorage := mocks.NewMockIStorage(ctrl)
	initTestLogger(t)

	projects := NewProjects(mockStorage)

	// the endpoint does not validate the status vocabulary or the
	// progress range; callers must defend against out-of-range values
	status := "archived"
	progress := 150
	record := models.Project{ID: "project_1_abc"}
	mockStorage.EXPECT().GetProject(gomock.Any(), record.ID).Return(&record, nil)
	mockStorage.EXPECT().SaveProject(gomock.Any(), gomock.Any()).Return(nil)

	got, err := projects.UpdateProject(context.Background(), record.ID, models.ProjectUpdateRequest{Status: &status, Progress: &progress})
	if err != nil {
		t.Fatalf("Expected project, got error: %v", err)
	}
	if got.Status != "archived" || got.Progress != 150 {
		t.Errorf("Expected values stored as-is, got: %+v", got)
	}
}
