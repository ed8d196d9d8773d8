package httpadapter

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"comparee/internal/adapter/usecase"
	"comparee/internal/core/domain"
	"comparee/internal/core/port"
)

func TestListCompanies(t *testing.T) {
	f := newFixture(t, Options{})
	want := domain.CompanyFilter{
		Status: domain.CompanySuspended,
		Search: "acme",
		Page:   domain.Page{Number: 3, Size: domain.MaxPageSize},
	}
	f.companies.EXPECT().List(mock.Anything, want).
		Return([]domain.CompanyOverview{{Company: domain.Company{ID: 4, Name: "Acme"}}}, int64(2001), nil)

	rec := f.do(http.MethodGet, "/api/admin/companies?status=%20Suspended&search=acme%20&page=3&pageSize=5000", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	env := decodeEnvelope(t, rec)
	assert.Equal(t, &pagination{Page: 3, PageSize: 1000, Total: 2001, TotalPages: 3}, env.Pagination)
	assert.Contains(t, string(env.Data), `"name":"Acme"`)
}

func TestListCompanies_UnknownStatus(t *testing.T) {
	f := newFixture(t, Options{})
	f.companies.EXPECT().List(mock.Anything, mock.Anything).
		Return(nil, int64(0), fmt.Errorf(`unknown status "gone": %w`, port.ErrValidation))

	rec := f.do(http.MethodGet, "/api/admin/companies?status=gone", "", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCompanyAction(t *testing.T) {
	cases := []struct {
		name     string
		body     string
		setup    func(f *fixture)
		wantCode int
		wantErr  string
	}{
		{
			name:     "unknown action",
			body:     `{"companyId":4,"action":"promote"}`,
			wantCode: http.StatusBadRequest,
			wantErr:  `unknown action "promote"`,
		},
		{
			name:     "missing company",
			body:     `{"action":"approve"}`,
			wantCode: http.StatusBadRequest,
			wantErr:  "companyId is required",
		},
		{
			name: "invalid transition",
			body: `{"companyId":4,"action":"suspend"}`,
			setup: func(f *fixture) {
				f.companies.EXPECT().Apply(mock.Anything, int64(4), domain.ActionSuspend).
					Return(nil, fmt.Errorf("%w: cannot suspend a pending company", port.ErrInvalidTransition))
			},
			wantCode: http.StatusConflict,
			wantErr:  "invalid status transition: cannot suspend a pending company",
		},
		{
			name: "not found",
			body: `{"companyId":99,"action":"approve"}`,
			setup: func(f *fixture) {
				f.companies.EXPECT().Apply(mock.Anything, int64(99), domain.ActionApprove).
					Return(nil, port.ErrNotFound)
			},
			wantCode: http.StatusNotFound,
			wantErr:  "not found",
		},
		{
			name: "applied",
			body: `{"companyId":4,"action":"Cancel"}`,
			setup: func(f *fixture) {
				f.companies.EXPECT().Apply(mock.Anything, int64(4), domain.ActionCancel).
					Return(&domain.CompanyStatusChangedEvent{
						CompanyID: 4, Action: domain.ActionCancel,
						From: domain.CompanyActive, To: domain.CompanyCancelled, PausedCampaigns: 2,
					}, nil)
			},
			wantCode: http.StatusOK,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture(t, Options{})
			if tc.setup != nil {
				tc.setup(f)
			}
			rec := f.do(http.MethodPost, "/api/admin/companies", tc.body, nil)
			require.Equal(t, tc.wantCode, rec.Code)

			env := decodeEnvelope(t, rec)
			assert.Equal(t, tc.wantErr, env.Error)
			if tc.wantCode == http.StatusOK {
				assert.Contains(t, string(env.Data), `"pausedCampaigns":2`)
			}
		})
	}
}

func TestUpdateCompany(t *testing.T) {
	f := newFixture(t, Options{})
	name := "Acme GmbH"
	f.companies.EXPECT().Update(mock.Anything, int64(4), domain.CompanyUpdate{Name: &name}).
		Return(&domain.Company{ID: 4, Name: name}, nil)

	rec := f.do(http.MethodPut, "/api/admin/companies", `{"companyId":4,"name":"Acme GmbH"}`, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, string(decodeEnvelope(t, rec).Data), `"name":"Acme GmbH"`)
}

func TestDeleteCompany(t *testing.T) {
	t.Run("blocked", func(t *testing.T) {
		f := newFixture(t, Options{})
		f.companies.EXPECT().Delete(mock.Anything, int64(4)).
			Return(&usecase.DeleteBlockedError{Reason: "company still has campaigns"})

		rec := f.do(http.MethodDelete, "/api/admin/companies?id=4", "", nil)
		require.Equal(t, http.StatusConflict, rec.Code)
		assert.Equal(t, "company still has campaigns", decodeEnvelope(t, rec).Error)
	})

	t.Run("missing", func(t *testing.T) {
		f := newFixture(t, Options{})
		f.companies.EXPECT().Delete(mock.Anything, int64(5)).Return(fmt.Errorf("company 5: %w", port.ErrNotFound))

		rec := f.do(http.MethodDelete, "/api/admin/companies?id=5", "", nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("bad id", func(t *testing.T) {
		f := newFixture(t, Options{})
		rec := f.do(http.MethodDelete, "/api/admin/companies?id=x", "", nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("deleted", func(t *testing.T) {
		f := newFixture(t, Options{})
		f.companies.EXPECT().Delete(mock.Anything, int64(6)).Return(nil)

		rec := f.do(http.MethodDelete, "/api/admin/companies?id=6", "", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"deletedId":6}`, string(decodeEnvelope(t, rec).Data))
	})
}
