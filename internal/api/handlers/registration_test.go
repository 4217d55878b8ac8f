package handlers

import (
	"errors"
	"net/http"
	"net/url"
	"testing"

	"saas-signup-backend/internal/database/models"
	apperrors "saas-signup-backend/internal/errors"
	"saas-signup-backend/internal/mocks"
	"saas-signup-backend/internal/service"
	"saas-signup-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// RegistrationHandlerTestSuite defines the test suite for RegistrationHandler
type RegistrationHandlerTestSuite struct {
	suite.Suite
	ctrl                *gomock.Controller
	mockRegistrationSvc *mocks.MockRegistrationServiceInterface
	handler             *RegistrationHandler
	httpSuite           *testutils.HTTPTestSuite
}

// SetupTest sets up the test suite
func (suite *RegistrationHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockRegistrationSvc = mocks.NewMockRegistrationServiceInterface(suite.ctrl)
	suite.handler = NewRegistrationHandler(suite.mockRegistrationSvc)

	suite.httpSuite = testutils.SetupHTTPTest()
	suite.httpSuite.Router.POST("/register", suite.handler.Register)
}

// TearDownTest cleans up after each test
func (suite *RegistrationHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestRegisterJSON tests a JSON signup
func (suite *RegistrationHandlerTestSuite) TestRegisterJSON() {
	body := map[string]interface{}{
		"company_id":   "c1",
		"company_name": "Acme",
		"email":        "a@x.com",
		"password":     "pw",
	}

	suite.mockRegistrationSvc.EXPECT().
		Register(gomock.Any(), &service.RegisterRequest{CompanyID: "c1", CompanyName: "Acme", Email: "a@x.com", Password: "pw"}).
		Return(&service.RegisterResponse{UserID: 1, Role: models.UserRoleAdmin, Status: models.UserStatusActive}, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/register", body)

	suite.Equal(http.StatusOK, recorder.Code)
	suite.JSONEq(`{"message":"registration completed","role":"admin","status":"active"}`, recorder.Body.String())
}

// TestRegisterForm tests a form-encoded signup
func (suite *RegistrationHandlerTestSuite) TestRegisterForm() {
	form := url.Values{}
	form.Set("company_id", "c1")
	form.Set("company_name", "Acme")
	form.Set("email", "b@x.com")
	form.Set("password", "pw")

	suite.mockRegistrationSvc.EXPECT().
		Register(gomock.Any(), &service.RegisterRequest{CompanyID: "c1", CompanyName: "Acme", Email: "b@x.com", Password: "pw"}).
		Return(&service.RegisterResponse{UserID: 2, Role: models.UserRoleStaff, Status: models.UserStatusPending}, nil)

	recorder := suite.httpSuite.MakeFormRequest(http.MethodPost, "/register", form)

	suite.Equal(http.StatusOK, recorder.Code)
	suite.JSONEq(`{"message":"registration completed","role":"staff","status":"pending"}`, recorder.Body.String())
}

// TestRegisterMissingField tests the 400 mapping
func (suite *RegistrationHandlerTestSuite) TestRegisterMissingField() {
	suite.mockRegistrationSvc.EXPECT().
		Register(gomock.Any(), gomock.Any()).
		Return(nil, apperrors.NewMissingFieldError("company_name"))

	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/register", map[string]string{
		"company_id": "c1",
		"email":      "b@x.com",
		"password":   "pw",
	})

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "missing required fields")
	suite.Contains(recorder.Body.String(), `"field":"company_name"`)
}

// TestRegisterEmptyObject tests that an empty JSON object reaches validation
func (suite *RegistrationHandlerTestSuite) TestRegisterEmptyObject() {
	suite.mockRegistrationSvc.EXPECT().
		Register(gomock.Any(), &service.RegisterRequest{}).
		Return(nil, apperrors.NewMissingFieldError("company_id"))

	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/register", map[string]string{})

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "missing required fields")
}

// TestRegisterMalformedJSON tests a body that is not JSON
func (suite *RegistrationHandlerTestSuite) TestRegisterMalformedJSON() {
	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/register", "{not json")

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "invalid request body")
}

// TestRegisterValidationError tests that a rejected request maps to 400
func (suite *RegistrationHandlerTestSuite) TestRegisterValidationError() {
	suite.mockRegistrationSvc.EXPECT().
		Register(gomock.Any(), gomock.Any()).
		Return(nil, apperrors.NewValidationError("request", "unsupported request"))

	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/register", map[string]string{
		"company_id": "c1", "company_name": "Acme", "email": "a@x.com", "password": "pw",
	})

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "invalid request body")
}

// TestRegisterPersistenceError tests the 500 mapping without leaking the cause
func (suite *RegistrationHandlerTestSuite) TestRegisterPersistenceError() {
	suite.mockRegistrationSvc.EXPECT().
		Register(gomock.Any(), gomock.Any()).
		Return(nil, apperrors.NewPersistenceError("create user", errors.New(`relation "users" does not exist`)))

	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/register", map[string]string{
		"company_id": "c1", "company_name": "Acme", "email": "a@x.com", "password": "pw",
	})

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusInternalServerError, "registration failed")
	suite.NotContains(recorder.Body.String(), "relation")
}

// TestRegistrationHandlerTestSuite runs the test suite
func TestRegistrationHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(RegistrationHandlerTestSuite))
}
