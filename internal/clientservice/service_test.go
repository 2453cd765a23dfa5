package clientservice

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"

	"github.com/go-petr/pet-ledger/internal/domain"
	"github.com/go-petr/pet-ledger/internal/ledger"
	"github.com/go-petr/pet-ledger/internal/test"
	"github.com/go-petr/pet-ledger/pkg/randompkg"
)

func TestRegister(t *testing.T) {
	testCases := []struct {
		name    string
		arg     domain.RegisterClientParams
		wantErr error
	}{
		{
			name: "Individual",
			arg: domain.RegisterClientParams{
				Name:     randompkg.Name(),
				Contact:  randompkg.Email(),
				Category: domain.CategoryIndividual,
			},
		},
		{
			name: "Enterprise",
			arg: domain.RegisterClientParams{
				Name:     randompkg.Name(),
				Contact:  randompkg.Email(),
				Category: domain.CategoryEnterprise,
			},
		},
		{
			name: "EmptyNameAllowed",
			arg: domain.RegisterClientParams{
				Category: domain.CategoryIndividual,
			},
		},
		{
			name: "InvalidCategory",
			arg: domain.RegisterClientParams{
				Name:     randompkg.Name(),
				Contact:  randompkg.Email(),
				Category: "GOVERNMENT",
			},
			wantErr: domain.ErrInvalidCategory,
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			r := ledger.NewRegistry()
			s := New(r)

			got, err := s.Register(context.Background(), tc.arg)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				require.Empty(t, r.ListClients())

				return
			}

			require.NoError(t, err)

			want := domain.Client{
				Name:     tc.arg.Name,
				Contact:  tc.arg.Contact,
				Category: tc.arg.Category,
				Accounts: []domain.Account{},
			}

			ignoreFields := cmpopts.IgnoreFields(domain.Client{}, "ID", "CreatedAt")
			if diff := cmp.Diff(want, got, ignoreFields); diff != "" {
				t.Errorf("Register mismatch (-want +got):\n%s", diff)
			}

			require.NotEmpty(t, got.ID)
		})
	}
}

func TestGetAndList(t *testing.T) {
	r := ledger.NewRegistry()
	s := New(r)
	ctx := context.Background()

	c1 := test.SeedClient(t, r)
	c2 := test.SeedClient(t, r)
	account := test.SeedAccountWithBalance(t, r, c2.ID(), "300")

	got, err := s.Get(ctx, c2.ID())
	require.NoError(t, err)
	require.Equal(t, c2.ID(), got.ID)
	require.Len(t, got.Accounts, 1)
	require.Equal(t, account.ID(), got.Accounts[0].ID)

	_, err = s.Get(ctx, "missing")
	require.ErrorIs(t, err, domain.ErrClientNotFound)

	all, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	require.Equal(t, c1.ID(), all[0].ID)
	require.Equal(t, c2.ID(), all[1].ID)
}

func TestTransactions(t *testing.T) {
	r := ledger.NewRegistry()
	s := New(r)
	ctx := context.Background()

	c := test.SeedClient(t, r)
	a1 := test.SeedAccountWithBalance(t, r, c.ID(), "10")
	a2 := test.SeedAccountWithBalance(t, r, c.ID(), "20")

	got, err := s.Transactions(ctx, c.ID())
	require.NoError(t, err)
	require.Len(t, got, 2)
	require.Equal(t, a2.ID(), got[0].AccountID)
	require.Equal(t, a1.ID(), got[1].AccountID)

	got, err = s.Transactions(ctx, "missing")
	require.NoError(t, err)
	require.Empty(t, got)
}
