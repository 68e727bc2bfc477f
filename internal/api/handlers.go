package api

import (
	"net/http"

	"github.com/meur/substrate/internal/matcher"
	"github.com/meur/substrate/internal/models"
)

// handleGetItems returns every catalog item in result shape
func (s *Server) handleGetItems(w http.ResponseWriter, r *http.Request) {
	results := s.engine.Filter(models.Query{})
	respondJSON(w, http.StatusOK, models.ResultList{
		Results:    results,
		TotalCount: len(results),
	})
}

// handleGetCatalog returns the catalog in its source document format
func (s *Server) handleGetCatalog(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if err := s.engine.Catalog().Encode(w, s.key); err != nil {
		s.logger.Error("failed to encode catalog", "error", err)
	}
}

// handleGetVocabulary returns the documented attribute values
func (s *Server) handleGetVocabulary(w http.ResponseWriter, r *http.Request) {
	if s.vocabulary == nil {
		respondJSON(w, http.StatusOK, models.Vocabulary{})
		return
	}
	respondJSON(w, http.StatusOK, s.vocabulary)
}

// handleMatch filters on any subset of the attribute triple
func (s *Server) handleMatch(w http.ResponseWriter, r *http.Request) {
	q := queryFromRequest(r)
	results := s.engine.Filter(q)
	outcome := matcher.Outcome(results)

	s.metrics.RecordLookup("match", outcome)
	s.logger.Debug("match", "base", q.Base, "additional", q.Additional, "skill", q.Skill, "outcome", outcome)

	respondJSON(w, http.StatusOK, models.ResultList{
		Results:    results,
		TotalCount: len(results),
		Summary:    matcher.Summarize(results),
	})
}

// handleExactMatch returns the first item matching the full triple
func (s *Server) handleExactMatch(w http.ResponseWriter, r *http.Request) {
	q := queryFromRequest(r)
	if !q.Complete() {
		respondError(w, http.StatusBadRequest, "base, additional, and skill are required")
		return
	}

	result, ok := s.engine.FindExactMatch(q.Base, q.Additional, q.Skill)
	if !ok {
		s.metrics.RecordLookup("exact", matcher.OutcomeNone)
		respondError(w, http.StatusNotFound, matcher.NoMatchMessage)
		return
	}

	s.metrics.RecordLookup("exact", matcher.OutcomeSingle)
	respondJSON(w, http.StatusOK, result)
}

func queryFromRequest(r *http.Request) models.Query {
	params := r.URL.Query()
	return models.Query{
		Base:       params.Get("base"),
		Additional: params.Get("additional"),
		Skill:      params.Get("skill"),
	}
}
