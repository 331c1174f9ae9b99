package reportservice

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/gigpay/gigpay/internal/domain"
	"github.com/gigpay/gigpay/pkg/errorspkg"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// decimal.Decimal holds unexported fields, so compare by value.
var decimalComparer = cmp.Comparer(func(a, b decimal.Decimal) bool {
	return a.Equal(b)
})

func TestBestProfessionsExpandsWindow(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := NewMockRepo(ctrl)
	service := New(repo)

	want := []domain.ProfessionEarnings{
		{Profession: "programmer", TotalEarned: decimal.RequireFromString("2683")},
		{Profession: "musician", TotalEarned: decimal.RequireFromString("21")},
	}

	// A single calendar day expands to its full [00:00:00, 23:59:59.999] range.
	wantFrom := time.Date(2020, time.August, 15, 0, 0, 0, 0, time.UTC)
	wantTo := time.Date(2020, time.August, 15, 23, 59, 59, 999000000, time.UTC)

	repo.EXPECT().BestProfessions(gomock.Any(), gomock.Eq(wantFrom), gomock.Eq(wantTo)).
		Times(1).
		Return(want, nil)

	got, err := service.BestProfessions(context.Background(), date(2020, time.August, 15), date(2020, time.August, 15))
	require.NoError(t, err)

	if diff := cmp.Diff(want, got, decimalComparer); diff != "" {
		t.Errorf("BestProfessions() mismatch (-want +got):\n%s", diff)
	}
}

func TestBestClients(t *testing.T) {
	testCases := []struct {
		name       string
		buildStubs func(repo *MockRepo)
		want       []domain.ClientPayments
		wantErr    error
	}{
		{
			name: "OK",
			buildStubs: func(repo *MockRepo) {
				rows := []domain.ClientPaymentsRow{
					{ID: 4, FirstName: " Ash", LastName: "Ketchum ", TotalPaid: decimal.RequireFromString("2020")},
					{ID: 2, FirstName: "Mr", LastName: "Robot", TotalPaid: decimal.RequireFromString("442")},
				}
				repo.EXPECT().BestClients(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Eq(int32(2))).
					Times(1).
					Return(rows, nil)
			},
			want: []domain.ClientPayments{
				{ID: 4, FullName: "Ash Ketchum", TotalPaid: decimal.RequireFromString("2020")},
				{ID: 2, FullName: "Mr Robot", TotalPaid: decimal.RequireFromString("442")},
			},
		},
		{
			name: "RepoError",
			buildStubs: func(repo *MockRepo) {
				repo.EXPECT().BestClients(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Times(1).
					Return(nil, errorspkg.ErrInternal)
			},
			wantErr: errorspkg.ErrInternal,
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := NewMockRepo(ctrl)
			tc.buildStubs(repo)

			service := New(repo)

			got, err := service.BestClients(context.Background(), date(2020, time.August, 1), date(2020, time.August, 21), 2)

			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				return
			}

			require.NoError(t, err)

			if diff := cmp.Diff(tc.want, got, decimalComparer); diff != "" {
				t.Errorf("BestClients() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestTotalOutstanding(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := NewMockRepo(ctrl)
	service := New(repo)

	want := decimal.RequireFromString("800")

	repo.EXPECT().TotalOutstanding(gomock.Any(), gomock.Eq(int64(1))).
		Times(1).
		Return(want, nil)

	got, err := service.TotalOutstanding(context.Background(), 1)
	require.NoError(t, err)
	require.True(t, got.Equal(want))
}
