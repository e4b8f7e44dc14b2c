package handler

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/leora-investor/investor-os-api/infrastructure/repository/mocks"
	"github.com/leora-investor/investor-os-api/internal/api/handler/router"
	"github.com/leora-investor/investor-os-api/internal/usecases/auditing"
	"github.com/leora-investor/investor-os-api/internal/usecases/snapshotting"
	"github.com/leora-investor/investor-os-api/internal/usecases/visioning"
	"github.com/leora-investor/investor-os-api/pkg/apiErrors"
)

func TestListSnapshots_ErroDoBancoNaoVazaParaOCliente(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockSnapshotRepository(ctrl)
	repo.EXPECT().ListSnapshots(gomock.Any(), gomock.Any()).
		Return(nil, errors.New(`pq: permission denied for table investor_positions_secret`))

	rt := router.New(router.WithRoutes(Snapshots(snapshotting.NewService(repo, 50), auditing.NewRegistry())...))

	rec := httptest.NewRecorder()
	rt.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/snapshots", nil))

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	apiErr := decode[apiErrors.APIError](t, rec)
	assert.Equal(t, apiErrors.ErrDatabaseOperation, apiErr.Code)
	assert.Equal(t, snapshotting.ErrListSnapshots.Error(), apiErr.Message)
	assert.NotContains(t, rec.Body.String(), "pq:")
	assert.NotContains(t, rec.Body.String(), "investor_positions_secret")
}

func TestWriteUseCaseError(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantCode    string
		wantMessage string
	}{
		{
			name:        "Erro de snapshot - só o erro base",
			err:         snapshotting.NewSnapshotError(snapshotting.ErrListSnapshots, apiErrors.ErrDatabaseOperation, "", "pq: raw detail"),
			wantStatus:  http.StatusInternalServerError,
			wantCode:    apiErrors.ErrDatabaseOperation,
			wantMessage: snapshotting.ErrListSnapshots.Error(),
		},
		{
			name:        "Erro de sessão - 404 sem detalhes",
			err:         visioning.NewVisionError(visioning.ErrSessionNotFound, apiErrors.ErrSessionNotFound, "s-1", "raw detail"),
			wantStatus:  http.StatusNotFound,
			wantCode:    apiErrors.ErrSessionNotFound,
			wantMessage: visioning.ErrSessionNotFound.Error(),
		},
		{
			name:        "Erro desconhecido - erro interno com a mensagem do handler",
			err:         errors.New("dial tcp: connection refused"),
			wantStatus:  http.StatusInternalServerError,
			wantCode:    apiErrors.ErrInternalServer,
			wantMessage: "Erro ao listar",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/", nil)

			writeUseCaseError(rec, req, tt.err, "Erro ao listar")

			require.Equal(t, tt.wantStatus, rec.Code)
			apiErr := decode[apiErrors.APIError](t, rec)
			assert.Equal(t, tt.wantCode, apiErr.Code)
			assert.Equal(t, tt.wantMessage, apiErr.Message)
			assert.NotContains(t, rec.Body.String(), "raw detail")
			assert.Nil(t, apiErr.Details)
		})
	}
}
