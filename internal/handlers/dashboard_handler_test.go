package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"fintech-dashboard/internal/dto"
	"fintech-dashboard/internal/models"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

// stubController serves a canned snapshot and records refresh calls.
type stubController struct {
	snapshot  models.DashboardSnapshot
	refreshes int
}

func (s *stubController) Start(ctx context.Context) error { return nil }
func (s *stubController) Refresh()                        { s.refreshes++ }
func (s *stubController) Snapshot() models.DashboardSnapshot {
	return s.snapshot
}
func (s *stubController) Close() {}

// DashboardHandlerSuite defines the test suite for DashboardHandler
type DashboardHandlerSuite struct {
	suite.Suite
	echo       *echo.Echo
	controller *stubController
	handler    *DashboardHandler
}

func (s *DashboardHandlerSuite) SetupTest() {
	s.echo = echo.New()
	s.controller = &stubController{
		snapshot: models.DashboardSnapshot{
			UserID: "u1",
			Stats: models.DashboardStats{
				Balance:  decimal.NewFromFloat(200.00),
				Accounts: 2,
				Cards:    1,
			},
			Cards: models.SectionState[models.Card]{
				Items: []models.Card{
					{ID: "c1", UserID: "u1", Brand: "Visa", Last4: "4242", Status: models.CardStatusActive},
				},
			},
			Transactions: models.SectionState[models.Transaction]{
				Items: []models.Transaction{
					{ID: "t1", UserID: "u1", Description: "Coffee", Amount: models.AmountFromFloat(4.5), Direction: models.DirectionDebit},
				},
			},
		},
	}
	s.handler = NewDashboardHandler(s.controller)
}

func TestDashboardHandlerSuite(t *testing.T) {
	suite.Run(t, new(DashboardHandlerSuite))
}

func (s *DashboardHandlerSuite) TestGetDashboard() {
	req := httptest.NewRequest(http.MethodGet, "/api/dashboard", nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)

	s.Require().NoError(s.handler.GetDashboard(c))
	s.Equal(http.StatusOK, rec.Code)

	var resp dto.DashboardResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))

	s.Equal("u1", resp.UserID)
	s.True(decimal.NewFromFloat(200.00).Equal(resp.Stats.Balance))
	s.Equal(2, resp.Stats.Accounts)
	s.Equal(1, resp.Stats.Cards)

	s.Require().Len(resp.Cards.Items, 1)
	s.Equal(models.DefaultCardColor, resp.Cards.Items[0].DisplayColor,
		"a card without a color gets the default accent")

	s.Require().Len(resp.Transactions.Items, 1)
	s.Equal("-$4.50", resp.Transactions.Items[0].DisplayAmount)
}

func (s *DashboardHandlerSuite) TestRefresh() {
	req := httptest.NewRequest(http.MethodPost, "/api/refresh", nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)

	s.Require().NoError(s.handler.Refresh(c))
	s.Equal(http.StatusOK, rec.Code)
	s.Equal(1, s.controller.refreshes)
	s.Contains(rec.Body.String(), "dashboard refreshed")
}
