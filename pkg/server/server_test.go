package server

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/TechGirlNerd900/nigerian-audit-ai/pkg/models/api"
	"github.com/TechGirlNerd900/nigerian-audit-ai/pkg/models/domain"
	auditmiddleware "github.com/TechGirlNerd900/nigerian-audit-ai/pkg/server/middleware"
	"github.com/TechGirlNerd900/nigerian-audit-ai/pkg/services/analysis"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockService struct {
	mock.Mock
}

func (m *mockService) Benchmarks(ctx context.Context, industry string) (domain.BenchmarkTable, error) {
	args := m.Called(ctx, industry)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(domain.BenchmarkTable), args.Error(1)
}

func (m *mockService) AnalyzeFinancials(ctx context.Context, in analysis.FinancialInput) (domain.FinancialAnalysis, error) {
	args := m.Called(ctx, in)
	return args.Get(0).(domain.FinancialAnalysis), args.Error(1)
}

func (m *mockService) CheckCompliance(ctx context.Context, in analysis.ComplianceInput) (domain.ComplianceOverview, error) {
	args := m.Called(ctx, in)
	return args.Get(0).(domain.ComplianceOverview), args.Error(1)
}

func (m *mockService) AssessRisk(ctx context.Context, in domain.RiskInputs) (domain.RiskAssessment, error) {
	args := m.Called(ctx, in)
	return args.Get(0).(domain.RiskAssessment), args.Error(1)
}

func (m *mockService) Audit(ctx context.Context, in analysis.AuditInput) (domain.AuditReport, error) {
	args := m.Called(ctx, in)
	return args.Get(0).(domain.AuditReport), args.Error(1)
}

func (m *mockService) SuggestSamples(ctx context.Context, in analysis.SamplingInput) (domain.SamplingPlan, error) {
	args := m.Called(ctx, in)
	return args.Get(0).(domain.SamplingPlan), args.Error(1)
}

func TestWebAPI_Endpoints(t *testing.T) {
	logger := zerolog.New(zerolog.NewTestWriter(t))

	svc := new(mockService)

	config := Config{
		Addr:            ":8080",
		ShutdownTimeout: 10 * time.Second,
		Dependencies: Dependencies{
			Service: svc,
			Logger:  logger,
		},
	}
	router := ConfigureRouter(config)
	testServer := httptest.NewServer(router)
	defer testServer.Close()

	target := 0.5

	tests := []struct {
		name           string
		method         string
		path           string
		body           string
		setupMocks     func()
		expectedStatus int
		expected       interface{}
		parseResponse  func([]byte) (interface{}, error)
	}{
		{
			name:           "Healthz",
			method:         http.MethodGet,
			path:           "/healthz",
			setupMocks:     func() {},
			expectedStatus: http.StatusOK,
			expected:       "ok",
			parseResponse: func(data []byte) (interface{}, error) {
				return string(data), nil
			},
		},
		{
			name:   "GetBenchmarks",
			method: http.MethodGet,
			path:   "/api/v1/benchmarks/banking",
			setupMocks: func() {
				svc.On("Benchmarks", mock.Anything, "banking").
					Return(domain.BenchmarkTable{
						domain.RatioCurrent:      {Ratio: domain.RatioCurrent, Kind: domain.BenchmarkOptimalRange, Low: 1, High: 1.5},
						domain.RatioDebtToEquity: {Ratio: domain.RatioDebtToEquity, Kind: domain.BenchmarkTarget, Target: 0.5},
					}, nil)
			},
			expectedStatus: http.StatusOK,
			expected: api.BenchmarkTable{
				Industry: "banking",
				Benchmarks: []api.Benchmark{
					{Ratio: domain.RatioCurrent, Kind: "optimal_range", Range: []float64{1, 1.5}},
					{Ratio: domain.RatioDebtToEquity, Kind: "target", Target: &target},
				},
			},
			parseResponse: unmarshalResponse[api.BenchmarkTable](),
		},
		{
			name:   "GetBenchmarks_ProviderFailure",
			method: http.MethodGet,
			path:   "/api/v1/benchmarks/mining",
			setupMocks: func() {
				svc.On("Benchmarks", mock.Anything, "mining").
					Return(nil, errors.New("benchmark source unavailable"))
			},
			expectedStatus: http.StatusInternalServerError,
			expected:       api.ErrorResponse{Error: "benchmark source unavailable"},
			parseResponse:  unmarshalResponse[api.ErrorResponse](),
		},
		{
			name:   "AssessRisk",
			method: http.MethodPost,
			path:   "/api/v1/risk/assess",
			body:   `{"company":{"name":"Acme Ltd","industry":"banking"},"financial_data":{"current_ratio":1.2}}`,
			setupMocks: func() {
				svc.On("AssessRisk", mock.Anything, mock.MatchedBy(func(in domain.RiskInputs) bool {
					return in.CurrentRatio == 1.2
				})).Return(domain.RiskAssessment{
					OverallScore: 72.5,
					OverallLevel: domain.RiskLevelMedium,
				}, nil)
			},
			expectedStatus: http.StatusOK,
			expected: api.RiskAssessment{
				OverallScore:         72.5,
				RiskLevel:            "MEDIUM",
				Components:           []api.RiskComponent{},
				Matrix:               []api.RiskMatrixEntry{},
				CriticalRisks:        []api.CriticalRisk{},
				MitigationStrategies: []string{},
				Recommendations:      []string{},
			},
			parseResponse: func(data []byte) (interface{}, error) {
				var res api.RiskAssessment
				if err := json.Unmarshal(data, &res); err != nil {
					return nil, err
				}
				if res.AnalysisID == "" {
					return nil, errors.New("missing analysis id")
				}
				res.AnalysisID = ""
				return res, nil
			},
		},
		{
			name:           "AssessRisk_InvalidBody",
			method:         http.MethodPost,
			path:           "/api/v1/risk/assess",
			body:           `{"company":`,
			setupMocks:     func() {},
			expectedStatus: http.StatusBadRequest,
			expected:       true,
			parseResponse: func(data []byte) (interface{}, error) {
				var res api.ErrorResponse
				err := json.Unmarshal(data, &res)
				return strings.HasPrefix(res.Error, "bad request"), err
			},
		},
		{
			name:           "Metrics",
			method:         http.MethodGet,
			path:           "/metrics",
			setupMocks:     func() {},
			expectedStatus: http.StatusOK,
			expected:       true,
			parseResponse: func(data []byte) (interface{}, error) {
				text := string(data)
				return strings.Contains(text, "audit_http_requests_total") &&
					strings.Contains(text, `route="/api/v1/benchmarks/{industry}"`), nil
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tc.setupMocks()

			var body io.Reader
			if tc.body != "" {
				body = strings.NewReader(tc.body)
			}
			req, err := http.NewRequest(tc.method, testServer.URL+tc.path, body)
			require.NoError(t, err, "Failed to build request")

			resp, err := http.DefaultClient.Do(req)
			require.NoError(t, err, "Failed to send request")
			defer resp.Body.Close()

			assert.Equal(t, tc.expectedStatus, resp.StatusCode, "Status code mismatch")

			data, err := io.ReadAll(resp.Body)
			require.NoError(t, err, "Failed to read response body")

			actual, err := tc.parseResponse(data)
			require.NoError(t, err, "Failed to parse response")

			assert.Equal(t, tc.expected, actual)
		})
	}

	svc.AssertExpectations(t)
}

func TestWebAPI_AnalysisIDMatchesRequestID(t *testing.T) {
	svc := new(mockService)
	svc.On("AssessRisk", mock.Anything, mock.Anything).
		Return(domain.RiskAssessment{OverallScore: 90, OverallLevel: domain.RiskLevelLow}, nil)

	router := ConfigureRouter(Config{Dependencies: Dependencies{
		Service: svc,
		Logger:  zerolog.New(zerolog.NewTestWriter(t)),
	}})
	testServer := httptest.NewServer(router)
	defer testServer.Close()

	resp, err := http.Post(testServer.URL+"/api/v1/risk/assess", "application/json",
		strings.NewReader(`{"company":{"name":"Acme Ltd"},"financial_data":{"current_ratio":2}}`))
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	var body api.RiskAssessment
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))

	assert.NotEmpty(t, body.AnalysisID)
	assert.Equal(t, resp.Header.Get(auditmiddleware.RequestIDHeader), body.AnalysisID)
}

func TestNewWebAPI_DefaultsShutdownTimeout(t *testing.T) {
	web := NewWebAPI(zerolog.Nop(), Config{Addr: ":0", Dependencies: Dependencies{Service: new(mockService)}})

	assert.Equal(t, defaultShutdownTimeout, web.shutdownTimeout)
	assert.Equal(t, ":0", web.server.Addr)
}

func unmarshalResponse[T any]() func([]byte) (interface{}, error) {
	return func(data []byte) (interface{}, error) {
		var response T
		err := json.Unmarshal(data, &response)
		return response, err
	}
}
