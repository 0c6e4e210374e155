package api_test

import (
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/wordspark/echo/internal/api"
	"github.com/wordspark/echo/internal/db"
	"github.com/wordspark/echo/internal/models"
	"github.com/wordspark/echo/internal/repository/sqlite"
	"github.com/wordspark/echo/internal/services"
	"github.com/wordspark/echo/internal/testutil"
	"github.com/wordspark/echo/internal/testutil/mocks"
	"github.com/wordspark/echo/internal/worker"
)

type APISuite struct {
	suite.Suite
	db      *sql.DB
	jobs    *mocks.MockJobQueue
	handler http.Handler
}

func (s *APISuite) SetupTest() {
	s.db = testutil.NewTestDB(s.T())
	s.jobs = new(mocks.MockJobQueue)

	testutil.InsertWords(s.T(), s.db,
		models.Word{ID: 1, Text: "cat", Phonetic: testutil.StrPtr("K AE1 T"), ExampleSentence: testutil.StrPtr("The cat sat.")},
		models.Word{ID: 2, Text: "dog"},
		models.Word{ID: 3, Text: "bird"},
	)
	testutil.InsertPlan(s.T(), s.db, 1, 2, []int64{1, 2, 3})

	cfg := services.PlanConfig{
		UserID:           1,
		DefaultDailyGoal: 20,
		Location:         time.UTC,
		WeekStart:        time.Sunday,
		Now:              func() time.Time { return time.Date(2025, time.October, 20, 9, 0, 0, 0, time.UTC) },
	}
	words := sqlite.NewWordRepository(s.db)
	plans := sqlite.NewPlanRepository(s.db)
	progress := sqlite.NewProgressRepository(s.db)
	users := sqlite.NewUserRepository(s.db)
	planService := services.NewPlanService(plans, progress, words, cfg)

	srv := &api.Server{
		WordService:     services.NewWordService(words, sqlite.NewPronunciationRepository(s.db)),
		PlanService:     planService,
		CalendarService: services.NewCalendarService(planService, cfg),
		UserService:     services.NewUserService(users, plans, words, cfg),
		ProgressService: services.NewProgressService(progress, words, cfg),
		JobQueue:        s.jobs,
		Health:          &db.DB{DB: s.db},
		MaxImportBytes:  1 << 10,
	}
	s.handler = srv.Routes()
}

func (s *APISuite) TearDownTest() {
	testutil.MustClose(s.T(), s.db)
}

func (s *APISuite) do(method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	s.handler.ServeHTTP(rec, req)
	return rec
}

func (s *APISuite) decode(rec *httptest.ResponseRecorder, v any) {
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), v), rec.Body.String())
}

func (s *APISuite) assertError(rec *httptest.ResponseRecorder, status int, code string) {
	s.Assert().Equal(status, rec.Code, rec.Body.String())
	var body struct {
		Error struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		} `json:"error"`
	}
	s.decode(rec, &body)
	s.Assert().Equal(code, body.Error.Code)
	s.Assert().NotEmpty(body.Error.Message)
}

func (s *APISuite) TestHealthAndReady() {
	rec := s.do(http.MethodGet, "/health", "")
	s.Assert().Equal(http.StatusOK, rec.Code)
	s.Assert().NotEmpty(rec.Header().Get("X-Request-ID"))

	rec = s.do(http.MethodGet, "/ready", "")
	s.Assert().Equal(http.StatusOK, rec.Code)
	s.Assert().Equal("Ready", rec.Body.String())
}

func (s *APISuite) TestReadyFailsWhenStoreIsClosed() {
	s.Require().NoError(s.db.Close())
	rec := s.do(http.MethodGet, "/ready", "")
	s.Assert().Equal(http.StatusServiceUnavailable, rec.Code)
}

func (s *APISuite) TestRequestIDIsEchoed() {
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("X-Request-ID", "abc123")
	rec := httptest.NewRecorder()
	s.handler.ServeHTTP(rec, req)
	s.Assert().Equal("abc123", rec.Header().Get("X-Request-ID"))
}

func (s *APISuite) TestWords() {
	var all []models.Word
	rec := s.do(http.MethodGet, "/words", "")
	s.Require().Equal(http.StatusOK, rec.Code)
	s.decode(rec, &all)
	s.Assert().Len(all, 3)

	var random []models.Word
	rec = s.do(http.MethodGet, "/words/random?count=2", "")
	s.Require().Equal(http.StatusOK, rec.Code)
	s.decode(rec, &random)
	s.Assert().Len(random, 2)

	s.assertError(s.do(http.MethodGet, "/words/random?count=abc", ""), http.StatusBadRequest, "BAD_REQUEST")
	s.assertError(s.do(http.MethodGet, "/words/random?count=0", ""), http.StatusBadRequest, "VALIDATION_ERROR")
}

func (s *APISuite) TestGetWord() {
	var detail struct {
		ID   int64   `json:"id"`
		Word string  `json:"word"`
		IPA  *string `json:"ipa"`
	}
	rec := s.do(http.MethodGet, "/words/1", "")
	s.Require().Equal(http.StatusOK, rec.Code)
	s.decode(rec, &detail)
	s.Assert().Equal("cat", detail.Word)
	s.Require().NotNil(detail.IPA)
	s.Assert().Equal("k ˈæ t", *detail.IPA)

	s.assertError(s.do(http.MethodGet, "/words/99", ""), http.StatusNotFound, "NOT_FOUND")
	s.assertError(s.do(http.MethodGet, "/words/abc", ""), http.StatusBadRequest, "BAD_REQUEST")
}

func (s *APISuite) TestSentenceAndPronunciation() {
	var sentence map[string]string
	rec := s.do(http.MethodGet, "/sentence", "")
	s.Require().Equal(http.StatusOK, rec.Code)
	s.decode(rec, &sentence)
	s.Assert().Equal("The cat sat.", sentence["sentence"])

	var pron models.PronunciationResult
	rec = s.do(http.MethodGet, "/pronunciations/cat", "")
	s.Require().Equal(http.StatusOK, rec.Code)
	s.decode(rec, &pron)
	s.Assert().Equal("k ˈæ t", pron.IPA)

	s.assertError(s.do(http.MethodGet, "/pronunciations/zebra", ""), http.StatusNotFound, "NOT_FOUND")
}

func (s *APISuite) TestPlans() {
	var plan models.DailyLearningPlan
	rec := s.do(http.MethodGet, "/plans/today", "")
	s.Require().Equal(http.StatusOK, rec.Code)
	s.decode(rec, &plan)
	s.Assert().Equal("2025-10-20", plan.Date)
	s.Assert().Equal(2, plan.DailyGoal)
	s.Assert().Len(plan.NewWords, 2)
	s.Assert().Empty(plan.ReviewWords)

	s.assertError(s.do(http.MethodGet, "/plans/20-10-2025", ""), http.StatusBadRequest, "VALIDATION_ERROR")
}

func (s *APISuite) TestCalendar() {
	var days []models.CalendarDay
	rec := s.do(http.MethodGet, "/calendar?month=2025-10", "")
	s.Require().Equal(http.StatusOK, rec.Code)
	s.decode(rec, &days)
	s.Require().Len(days, 35)
	s.Assert().Equal("2025-09-28", days[0].DateString)
	s.Assert().Equal(2, days[22].WordCount, days[22].DateString)

	s.assertError(s.do(http.MethodGet, "/calendar?month=oct", ""), http.StatusBadRequest, "VALIDATION_ERROR")
}

func (s *APISuite) TestProgressAndStats() {
	var data models.UserWordData
	rec := s.do(http.MethodPost, "/words/2/progress", `{"mastery_level":2,"correct":true,"learned":true,"next_review_at":"2025-10-21"}`)
	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())
	s.decode(rec, &data)
	s.Assert().True(data.IsLearned)

	rec = s.do(http.MethodGet, "/words/2/progress", "")
	s.Require().Equal(http.StatusOK, rec.Code)
	s.decode(rec, &data)
	s.Assert().Equal(2, data.MasteryLevel)

	var stats models.UserStats
	rec = s.do(http.MethodGet, "/user/stats", "")
	s.Require().Equal(http.StatusOK, rec.Code)
	s.decode(rec, &stats)
	s.Assert().Equal(1, stats.TotalWordsLearned)

	s.assertError(s.do(http.MethodGet, "/words/3/progress", ""), http.StatusNotFound, "NOT_FOUND")
	s.assertError(s.do(http.MethodPost, "/words/2/progress", `{"mastery":1}`), http.StatusBadRequest, "BAD_REQUEST")
}

func (s *APISuite) TestUserAndCheckIn() {
	var user models.User
	rec := s.do(http.MethodGet, "/user", "")
	s.Require().Equal(http.StatusOK, rec.Code)
	s.decode(rec, &user)
	s.Assert().Equal(int64(1), user.ID)

	var stats models.UserStats
	rec = s.do(http.MethodPost, "/user/checkin", `{"date":"2025-10-19"}`)
	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())
	rec = s.do(http.MethodPost, "/user/checkin", "")
	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())
	s.decode(rec, &stats)
	s.Assert().Equal(2, stats.CurrentStreak)
	s.Assert().Equal("2025-10-20", *stats.LastCheckinDate)
}

func (s *APISuite) TestImport() {
	s.jobs.On("EnqueueImport", mock.MatchedBy(func(words []models.Word) bool {
		return len(words) == 1 && words[0].ID == 10 && words[0].Text == "owl"
	})).Return(nil).Once()

	rec := s.do(http.MethodPost, "/words/import", `[{"id":10,"word":"owl"}]`)
	s.Assert().Equal(http.StatusAccepted, rec.Code, rec.Body.String())
	s.jobs.AssertExpectations(s.T())
}

func (s *APISuite) TestImportRejected() {
	s.jobs.On("EnqueueImport", mock.Anything).Return(worker.ErrQueueFull).Once()
	s.assertError(s.do(http.MethodPost, "/words/import", `[{"id":10,"word":"owl"}]`), http.StatusServiceUnavailable, "UNAVAILABLE")

	s.assertError(s.do(http.MethodPost, "/words/import", `{"id":10}`), http.StatusBadRequest, "BAD_REQUEST")
	s.assertError(s.do(http.MethodPost, "/words/import", `[]`), http.StatusBadRequest, "VALIDATION_ERROR")

	tooBig := "[" + strings.Repeat(`{"id":1,"word":"x"},`, 100) + `{"id":1,"word":"x"}]`
	s.assertError(s.do(http.MethodPost, "/words/import", tooBig), http.StatusRequestEntityTooLarge, "PAYLOAD_TOO_LARGE")
}

func TestAPISuite(t *testing.T) {
	suite.Run(t, new(APISuite))
}
