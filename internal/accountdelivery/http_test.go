package accountdelivery

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"

	"github.com/go-petr/pet-ledger/internal/domain"
	"github.com/go-petr/pet-ledger/internal/test"
	"github.com/go-petr/pet-ledger/pkg/errorspkg"
	"github.com/go-petr/pet-ledger/pkg/web"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)

	if err := web.RegisterValidators(); err != nil {
		panic(err)
	}

	os.Exit(m.Run())
}

type route struct {
	method  string
	pattern string
	handle  func(h *Handler) gin.HandlerFunc
}

func serve(t *testing.T, as Service, rt route, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	server := gin.New()
	server.Handle(rt.method, rt.pattern, rt.handle(NewHandler(as)))

	var reader io.Reader

	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("Encoding request body error: %v", err)
		}

		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequest(rt.method, path, reader)
	if err != nil {
		t.Fatalf("Creating request error: %v", err)
	}

	recorder := httptest.NewRecorder()
	server.ServeHTTP(recorder, req)

	return recorder
}

func decode(t *testing.T, recorder *httptest.ResponseRecorder, data any) web.Response {
	t.Helper()

	res := web.Response{Data: data}
	if err := json.NewDecoder(recorder.Body).Decode(&res); err != nil {
		t.Fatalf("Decoding response body error: %v", err)
	}

	return res
}

func TestCreate(t *testing.T) {
	account := test.RandomAccount("client-1")
	rt := route{http.MethodPost, "/clients/:id/accounts", func(h *Handler) gin.HandlerFunc { return h.Create }}

	testCases := []struct {
		name           string
		buildStubs     func(accountService *MockService)
		wantStatusCode int
		wantError      string
	}{
		{
			name: "OK",
			buildStubs: func(accountService *MockService) {
				accountService.EXPECT().
					Open(gomock.Any(), gomock.Eq("client-1")).
					Times(1).
					Return(account, nil)
			},
			wantStatusCode: http.StatusOK,
		},
		{
			name: "ClientNotFound",
			buildStubs: func(accountService *MockService) {
				accountService.EXPECT().
					Open(gomock.Any(), gomock.Eq("client-1")).
					Times(1).
					Return(domain.Account{}, domain.ErrClientNotFound)
			},
			wantStatusCode: http.StatusNotFound,
			wantError:      domain.ErrClientNotFound.Error(),
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			accountService := NewMockService(ctrl)
			tc.buildStubs(accountService)

			recorder := serve(t, accountService, rt, "/clients/client-1/accounts", nil)
			if got := recorder.Code; got != tc.wantStatusCode {
				t.Errorf("Status code: got %v, want %v", got, tc.wantStatusCode)
			}

			got := &accountData{}
			res := decode(t, recorder, got)

			if tc.wantStatusCode != http.StatusOK {
				if res.Error != tc.wantError {
					t.Errorf(`resp.Error=%q, want %q`, res.Error, tc.wantError)
				}

				return
			}

			if diff := cmp.Diff(account, got.Account); diff != "" {
				t.Errorf("res.Data mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestGet(t *testing.T) {
	account := test.RandomAccount("client-1")
	rt := route{http.MethodGet, "/accounts/:id", func(h *Handler) gin.HandlerFunc { return h.Get }}

	testCases := []struct {
		name           string
		returnErr      error
		wantStatusCode int
		wantError      string
	}{
		{name: "OK", wantStatusCode: http.StatusOK},
		{
			name:           "NotFound",
			returnErr:      domain.ErrAccountNotFound,
			wantStatusCode: http.StatusNotFound,
			wantError:      domain.ErrAccountNotFound.Error(),
		},
		{
			name:           "InternalError",
			returnErr:      errorspkg.ErrInternal,
			wantStatusCode: http.StatusInternalServerError,
			wantError:      errorspkg.ErrInternal.Error(),
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			want := account
			if tc.returnErr != nil {
				want = domain.Account{}
			}

			accountService := NewMockService(ctrl)
			accountService.EXPECT().
				Get(gomock.Any(), gomock.Eq(account.ID)).
				Times(1).
				Return(want, tc.returnErr)

			recorder := serve(t, accountService, rt, "/accounts/"+account.ID, nil)
			if got := recorder.Code; got != tc.wantStatusCode {
				t.Errorf("Status code: got %v, want %v", got, tc.wantStatusCode)
			}

			got := &accountData{}
			res := decode(t, recorder, got)

			if tc.wantStatusCode != http.StatusOK {
				if res.Error != tc.wantError {
					t.Errorf(`resp.Error=%q, want %q`, res.Error, tc.wantError)
				}

				return
			}

			if diff := cmp.Diff(account, got.Account); diff != "" {
				t.Errorf("res.Data mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestTransactions(t *testing.T) {
	account := test.RandomAccount("client-1")
	txs := []domain.Transaction{test.RandomTransaction(account.ID), test.RandomTransaction(account.ID)}
	rt := route{http.MethodGet, "/accounts/:id/transactions", func(h *Handler) gin.HandlerFunc { return h.Transactions }}

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	accountService := NewMockService(ctrl)
	accountService.EXPECT().
		Transactions(gomock.Any(), gomock.Eq(account.ID)).
		Times(1).
		Return(txs, nil)

	recorder := serve(t, accountService, rt, "/accounts/"+account.ID+"/transactions", nil)
	if got := recorder.Code; got != http.StatusOK {
		t.Fatalf("Status code: got %v, want %v", got, http.StatusOK)
	}

	got := &transactionsData{}
	decode(t, recorder, got)

	if diff := cmp.Diff(txs, got.Transactions); diff != "" {
		t.Errorf("res.Data mismatch (-want +got):\n%s", diff)
	}
}

func TestDepositAndWithdraw(t *testing.T) {
	account := test.RandomAccount("client-1")
	tx := test.RandomTransaction(account.ID)
	result := domain.OperationResult{Account: account, Transaction: tx}

	deposit := route{http.MethodPost, "/accounts/:id/deposits", func(h *Handler) gin.HandlerFunc { return h.Deposit }}
	withdraw := route{http.MethodPost, "/accounts/:id/withdrawals", func(h *Handler) gin.HandlerFunc { return h.Withdraw }}

	testCases := []struct {
		name           string
		route          route
		requestBody    gin.H
		buildStubs     func(accountService *MockService)
		wantStatusCode int
		wantError      string
	}{
		{
			name:        "DepositOK",
			route:       deposit,
			requestBody: gin.H{"amount": "100.50", "location": "Branch"},
			buildStubs: func(accountService *MockService) {
				accountService.EXPECT().
					Deposit(gomock.Any(), gomock.Eq(account.ID), gomock.Eq("100.50"), gomock.Eq("Branch")).
					Times(1).
					Return(result, nil)
			},
			wantStatusCode: http.StatusOK,
		},
		{
			name:        "WithdrawOK",
			route:       withdraw,
			requestBody: gin.H{"amount": "20", "location": "ATM"},
			buildStubs: func(accountService *MockService) {
				accountService.EXPECT().
					Withdraw(gomock.Any(), gomock.Eq(account.ID), gomock.Eq("20"), gomock.Eq("ATM")).
					Times(1).
					Return(result, nil)
			},
			wantStatusCode: http.StatusOK,
		},
		{
			name:        "MissingAmount",
			route:       deposit,
			requestBody: gin.H{"location": "Branch"},
			buildStubs: func(accountService *MockService) {
				accountService.EXPECT().
					Deposit(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Times(0)
			},
			wantStatusCode: http.StatusBadRequest,
			wantError:      "Amount field is required",
		},
		{
			name:        "NegativeAmount",
			route:       withdraw,
			requestBody: gin.H{"amount": "-5", "location": "ATM"},
			buildStubs: func(accountService *MockService) {
				accountService.EXPECT().
					Withdraw(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Times(0)
			},
			wantStatusCode: http.StatusBadRequest,
			wantError:      "Amount must be a positive decimal number",
		},
		{
			name:        "AmountExponentTooLarge",
			route:       deposit,
			requestBody: gin.H{"amount": "1e200000000", "location": "ATM"},
			buildStubs: func(accountService *MockService) {
				accountService.EXPECT().
					Deposit(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Times(0)
			},
			wantStatusCode: http.StatusBadRequest,
			wantError:      "Amount must be a positive decimal number",
		},
		{
			name:        "SubCentAmount",
			route:       deposit,
			requestBody: gin.H{"amount": "0.001", "location": "ATM"},
			buildStubs: func(accountService *MockService) {
				accountService.EXPECT().
					Deposit(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Times(0)
			},
			wantStatusCode: http.StatusBadRequest,
			wantError:      "Amount must be a positive decimal number",
		},
		{
			name:        "InsufficientBalance",
			route:       withdraw,
			requestBody: gin.H{"amount": "1000000", "location": "ATM"},
			buildStubs: func(accountService *MockService) {
				accountService.EXPECT().
					Withdraw(gomock.Any(), gomock.Eq(account.ID), gomock.Eq("1000000"), gomock.Eq("ATM")).
					Times(1).
					Return(domain.OperationResult{}, domain.ErrInsufficientBalance)
			},
			wantStatusCode: http.StatusConflict,
			wantError:      domain.ErrInsufficientBalance.Error(),
		},
		{
			name:        "AccountNotActive",
			route:       deposit,
			requestBody: gin.H{"amount": "1", "location": "Online"},
			buildStubs: func(accountService *MockService) {
				accountService.EXPECT().
					Deposit(gomock.Any(), gomock.Eq(account.ID), gomock.Eq("1"), gomock.Eq("Online")).
					Times(1).
					Return(domain.OperationResult{}, domain.ErrAccountNotActive)
			},
			wantStatusCode: http.StatusConflict,
			wantError:      domain.ErrAccountNotActive.Error(),
		},
		{
			name:        "AccountNotFound",
			route:       deposit,
			requestBody: gin.H{"amount": "1", "location": "Online"},
			buildStubs: func(accountService *MockService) {
				accountService.EXPECT().
					Deposit(gomock.Any(), gomock.Eq(account.ID), gomock.Eq("1"), gomock.Eq("Online")).
					Times(1).
					Return(domain.OperationResult{}, domain.ErrAccountNotFound)
			},
			wantStatusCode: http.StatusNotFound,
			wantError:      domain.ErrAccountNotFound.Error(),
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			accountService := NewMockService(ctrl)
			tc.buildStubs(accountService)

			path := "/accounts/" + account.ID + "/deposits"
			if tc.route.pattern == withdraw.pattern {
				path = "/accounts/" + account.ID + "/withdrawals"
			}

			recorder := serve(t, accountService, tc.route, path, tc.requestBody)
			if got := recorder.Code; got != tc.wantStatusCode {
				t.Errorf("Status code: got %v, want %v", got, tc.wantStatusCode)
			}

			got := &operationData{}
			res := decode(t, recorder, got)

			if tc.wantStatusCode != http.StatusOK {
				if res.Error != tc.wantError {
					t.Errorf(`resp.Error=%q, want %q`, res.Error, tc.wantError)
				}

				return
			}

			if diff := cmp.Diff(result, got.Result); diff != "" {
				t.Errorf("res.Data mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestAccrueInterest(t *testing.T) {
	account := test.RandomAccount("client-1")
	interest := domain.Transaction{
		ID:        test.RandomTransaction(account.ID).ID,
		AccountID: account.ID,
		Timestamp: account.CreatedAt,
		Kind:      domain.KindInterest,
		Amount:    decimal.RequireFromString("20.00"),
		Location:  domain.InterestLocation,
	}
	rt := route{http.MethodPost, "/admin/accounts/:id/interest", func(h *Handler) gin.HandlerFunc { return h.AccrueInterest }}

	testCases := []struct {
		name           string
		result         domain.InterestResult
		returnErr      error
		wantStatusCode int
		wantError      string
	}{
		{
			name:           "Applied",
			result:         domain.InterestResult{Applied: true, Account: account, Transaction: &interest},
			wantStatusCode: http.StatusOK,
		},
		{
			name:           "Skipped",
			result:         domain.InterestResult{Account: account},
			wantStatusCode: http.StatusOK,
		},
		{
			name:           "NotSavingsAccount",
			returnErr:      domain.ErrNotSavingsAccount,
			wantStatusCode: http.StatusBadRequest,
			wantError:      domain.ErrNotSavingsAccount.Error(),
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			accountService := NewMockService(ctrl)
			accountService.EXPECT().
				AccrueInterest(gomock.Any(), gomock.Eq(account.ID)).
				Times(1).
				Return(tc.result, tc.returnErr)

			recorder := serve(t, accountService, rt, "/admin/accounts/"+account.ID+"/interest", nil)
			if got := recorder.Code; got != tc.wantStatusCode {
				t.Errorf("Status code: got %v, want %v", got, tc.wantStatusCode)
			}

			got := &interestData{}
			res := decode(t, recorder, got)

			if tc.wantStatusCode != http.StatusOK {
				if res.Error != tc.wantError {
					t.Errorf(`resp.Error=%q, want %q`, res.Error, tc.wantError)
				}

				return
			}

			if diff := cmp.Diff(tc.result, got.Result); diff != "" {
				t.Errorf("res.Data mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSetStatus(t *testing.T) {
	account := test.RandomAccount("client-1")
	frozen := account
	frozen.Status = domain.StatusFrozen
	rt := route{http.MethodPatch, "/admin/accounts/:id/status", func(h *Handler) gin.HandlerFunc { return h.SetStatus }}

	testCases := []struct {
		name           string
		requestBody    gin.H
		buildStubs     func(accountService *MockService)
		wantStatusCode int
		wantError      string
	}{
		{
			name:        "OK",
			requestBody: gin.H{"status": "FROZEN"},
			buildStubs: func(accountService *MockService) {
				accountService.EXPECT().
					SetStatus(gomock.Any(), gomock.Eq(account.ID), gomock.Eq("FROZEN")).
					Times(1).
					Return(frozen, nil)
			},
			wantStatusCode: http.StatusOK,
		},
		{
			name:        "UnknownStatus",
			requestBody: gin.H{"status": "ASLEEP"},
			buildStubs: func(accountService *MockService) {
				accountService.EXPECT().
					SetStatus(gomock.Any(), gomock.Any(), gomock.Any()).
					Times(0)
			},
			wantStatusCode: http.StatusBadRequest,
			wantError:      "Status must be one of: ACTIVE, FROZEN, CLOSED, SUSPENDED",
		},
		{
			name:        "AccountNotFound",
			requestBody: gin.H{"status": "CLOSED"},
			buildStubs: func(accountService *MockService) {
				accountService.EXPECT().
					SetStatus(gomock.Any(), gomock.Eq(account.ID), gomock.Eq("CLOSED")).
					Times(1).
					Return(domain.Account{}, domain.ErrAccountNotFound)
			},
			wantStatusCode: http.StatusNotFound,
			wantError:      domain.ErrAccountNotFound.Error(),
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			accountService := NewMockService(ctrl)
			tc.buildStubs(accountService)

			recorder := serve(t, accountService, rt, "/admin/accounts/"+account.ID+"/status", tc.requestBody)
			if got := recorder.Code; got != tc.wantStatusCode {
				t.Errorf("Status code: got %v, want %v", got, tc.wantStatusCode)
			}

			got := &accountData{}
			res := decode(t, recorder, got)

			if tc.wantStatusCode != http.StatusOK {
				if res.Error != tc.wantError {
					t.Errorf(`resp.Error=%q, want %q`, res.Error, tc.wantError)
				}

				return
			}

			if diff := cmp.Diff(frozen, got.Account); diff != "" {
				t.Errorf("res.Data mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
