package analyses

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"resume-insights/internal/analytics"
	"resume-insights/internal/cache"
	"resume-insights/internal/extract"
	"resume-insights/internal/shared/metrics"
	"resume-insights/internal/shared/observability"
	"resume-insights/internal/shared/telemetry"
	"resume-insights/internal/shared/util"
	"resume-insights/resume/model"
)

// reportKeyVersion changes whenever the report shape or scoring changes.
const reportKeyVersion = "v1"

// DefaultCacheTTL applies when the service is built without a TTL.
const DefaultCacheTTL = 15 * time.Minute

// Service runs analyses and keeps their history.
type Service struct {
	Repo     Repo
	Cache    cache.Cache
	CacheTTL time.Duration

	now   func() time.Time
	newID func() string
}

// NewService constructs a Service. A nil cache disables report caching.
func NewService(repo Repo, c cache.Cache, ttl time.Duration) *Service {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &Service{
		Repo:     repo,
		Cache:    c,
		CacheTTL: ttl,
		now:      func() time.Time { return time.Now().UTC() },
		newID:    uuid.NewString,
	}
}

// Analyze scores doc, reusing a cached report for an identical document, and
// records the result in userID's history. cached reports whether the report
// came from the cache.
func (s *Service) Analyze(ctx context.Context, userID string, doc model.ResumeDocument) (Analysis, bool, error) {
	ctx, span := observability.Tracer().Start(ctx, "analysis.run")
	defer span.End()
	span.SetAttributes(attribute.String("user.id", userID))

	metrics.IncAnalysisStarted()
	hash, err := util.HashDocument(doc)
	if err != nil {
		metrics.IncAnalysisFailed()
		span.RecordError(err)
		span.SetStatus(codes.Error, "hash document")
		return Analysis{}, false, err
	}

	report, cached := s.lookup(ctx, hash)
	if !cached {
		report = s.Score(doc)
		s.store(ctx, hash, report)
	}
	span.SetAttributes(
		attribute.Bool("analysis.cached", cached),
		attribute.Int("analysis.overall", report.Scores.Overall),
	)

	analysis := Analysis{
		ID:           s.newID(),
		UserID:       userID,
		DocumentHash: hash,
		Overall:      report.Scores.Overall,
		Report:       report,
		CreatedAt:    s.now(),
	}
	if err := s.Repo.Create(ctx, analysis); err != nil {
		metrics.IncAnalysisFailed()
		span.RecordError(err)
		span.SetStatus(codes.Error, "persist analysis")
		telemetry.Error("analysis.persist_failed", map[string]any{
			"analysis_id": analysis.ID,
			"user_id":     userID,
			"error":       err,
		})
		return Analysis{}, false, fmt.Errorf("store analysis: %w", err)
	}

	metrics.IncAnalysisCompleted()
	telemetry.Info("analysis.completed", map[string]any{
		"analysis_id":   analysis.ID,
		"user_id":       userID,
		"document_hash": hash,
		"overall":       analysis.Overall,
		"cached":        cached,
	})
	return analysis, cached, nil
}

// Score runs the engine without caching or persistence.
func (s *Service) Score(doc model.ResumeDocument) analytics.AnalysisReport {
	start := time.Now()
	report := analytics.Analyze(doc)
	metrics.ObserveAnalysisDurationMs(float64(time.Since(start).Microseconds()) / 1000.0)
	metrics.ObserveOverallScore(report.Scores.Overall)
	return report
}

// AnalyzeText scores unstructured resume text.
func (s *Service) AnalyzeText(ctx context.Context, text string) (analytics.TextReport, error) {
	_, span := observability.Tracer().Start(ctx, "analysis.text")
	defer span.End()

	if strings.TrimSpace(text) == "" {
		return analytics.TextReport{}, ErrEmptyText
	}
	report := analytics.AnalyzeText(text)
	span.SetAttributes(attribute.Int("text.word_count", report.WordCount))
	return report, nil
}

// AnalyzeFile extracts text from an uploaded file and scores it.
func (s *Service) AnalyzeFile(ctx context.Context, data []byte, mimeType, fileName string) (analytics.TextReport, error) {
	name, err := util.SanitizeFileName(fileName)
	if err != nil {
		name = ""
	}
	text, err := extract.ExtractTextFromBytes(ctx, data, mimeType, name)
	if err != nil {
		return analytics.TextReport{}, err
	}
	return s.AnalyzeText(ctx, text)
}

// Get returns a stored analysis owned by userID.
func (s *Service) Get(ctx context.Context, userID, analysisID string) (Analysis, error) {
	if _, err := uuid.Parse(analysisID); err != nil {
		return Analysis{}, ErrNotFound
	}
	return s.Repo.GetByID(ctx, userID, analysisID)
}

// List returns userID's analyses newest first.
func (s *Service) List(ctx context.Context, userID string, limit, offset int) ([]Analysis, error) {
	return s.Repo.ListByUser(ctx, userID, limit, offset)
}

func reportKey(hash string) string {
	return reportKeyVersion + ":" + hash
}

// lookup treats every cache failure as a miss.
func (s *Service) lookup(ctx context.Context, hash string) (analytics.AnalysisReport, bool) {
	var report analytics.AnalysisReport
	if s.Cache == nil {
		return report, false
	}
	raw, found, err := s.Cache.Get(ctx, reportKey(hash))
	if err != nil {
		level := telemetry.Warn
		if errors.Is(err, cache.ErrUnavailable) {
			level = telemetry.Debug
		}
		level("cache.get_failed", map[string]any{"document_hash": hash, "error": err})
		metrics.IncCacheMiss()
		return report, false
	}
	if !found {
		metrics.IncCacheMiss()
		return report, false
	}
	if err := json.Unmarshal(raw, &report); err != nil {
		telemetry.Warn("cache.decode_failed", map[string]any{"document_hash": hash, "error": err})
		metrics.IncCacheMiss()
		return analytics.AnalysisReport{}, false
	}
	metrics.IncCacheHit()
	return report, true
}

func (s *Service) store(ctx context.Context, hash string, report analytics.AnalysisReport) {
	if s.Cache == nil {
		return
	}
	raw, err := json.Marshal(report)
	if err != nil {
		telemetry.Warn("cache.encode_failed", map[string]any{"document_hash": hash, "error": err})
		return
	}
	if err := s.Cache.Set(ctx, reportKey(hash), raw, s.CacheTTL); err != nil {
		telemetry.Warn("cache.set_failed", map[string]any{"document_hash": hash, "error": err})
	}
}
