package handlers

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"irms.fjp.io/irms/ent"
	"irms.fjp.io/irms/ent/historyentry"
	entuser "irms.fjp.io/irms/ent/user"
	"irms.fjp.io/irms/internal/pkg/logger"

	apperrors "irms.fjp.io/irms/internal/pkg/errors"
)

// ListHistory handles GET /history. Entries are immutable, the endpoint
// is read-only with filters on action, actor, and time range.
func (s *Server) ListHistory(c *gin.Context) {
	ctx := c.Request.Context()

	query := s.client.HistoryEntry.Query()

	if action := c.Query("action"); action != "" {
		if err := historyentry.ActionValidator(historyentry.Action(action)); err != nil {
			_ = c.Error(apperrors.BadRequest(apperrors.CodeInvalidRequest, "Unknown action"))
			return
		}
		query = query.Where(historyentry.ActionEQ(historyentry.Action(action)))
	}
	if userID := c.Query("userId"); userID != "" {
		query = query.Where(historyentry.ActorID(userID))
	}
	if start := c.Query("startDate"); start != "" {
		t, err := parseDateParam(start)
		if err != nil {
			_ = c.Error(apperrors.BadRequest(apperrors.CodeInvalidRequest, "Invalid startDate"))
			return
		}
		query = query.Where(historyentry.CreatedAtGTE(t))
	}
	if end := c.Query("endDate"); end != "" {
		t, err := parseDateParam(end)
		if err != nil {
			_ = c.Error(apperrors.BadRequest(apperrors.CodeInvalidRequest, "Invalid endDate"))
			return
		}
		query = query.Where(historyentry.CreatedAtLTE(t))
	}

	page, perPage, offset := parsePagination(c, 20)

	total, err := query.Clone().Count(ctx)
	if err != nil {
		logger.Error("failed to count history entries", zap.Error(err))
		_ = c.Error(err)
		return
	}

	rows, err := query.
		Offset(offset).
		Limit(perPage).
		Order(ent.Desc(historyentry.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		logger.Error("failed to list history entries", zap.Error(err), zap.Int("page", page))
		_ = c.Error(err)
		return
	}

	items, err := s.historyItemsWithActors(ctx, rows)
	if err != nil {
		_ = c.Error(err)
		return
	}
	respondList(c, items, total, page, perPage)
}

// ListResourceHistory handles GET /history/resource/:id. It returns
// entries for one resource, including entries whose resource has since
// been deleted.
func (s *Server) ListResourceHistory(c *gin.Context) {
	ctx := c.Request.Context()

	query := s.client.HistoryEntry.Query().
		Where(historyentry.ResourceID(c.Param("id")))

	page, perPage, offset := parsePagination(c, 20)

	total, err := query.Clone().Count(ctx)
	if err != nil {
		logger.Error("failed to count resource history", zap.Error(err), zap.String("resource_id", c.Param("id")))
		_ = c.Error(err)
		return
	}

	rows, err := query.
		Offset(offset).
		Limit(perPage).
		Order(ent.Desc(historyentry.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		logger.Error("failed to list resource history", zap.Error(err), zap.String("resource_id", c.Param("id")))
		_ = c.Error(err)
		return
	}

	items, err := s.historyItemsWithActors(ctx, rows)
	if err != nil {
		_ = c.Error(err)
		return
	}
	respondList(c, items, total, page, perPage)
}

// historyItemsWithActors resolves actor usernames in one query. Entries
// whose actor account was removed keep an empty actor name.
func (s *Server) historyItemsWithActors(ctx context.Context, rows []*ent.HistoryEntry) ([]APIHistoryEntry, error) {
	actorIDs := make([]string, 0, len(rows))
	seen := map[string]struct{}{}
	for _, e := range rows {
		if _, ok := seen[e.ActorID]; !ok {
			seen[e.ActorID] = struct{}{}
			actorIDs = append(actorIDs, e.ActorID)
		}
	}

	names := map[string]string{}
	if len(actorIDs) > 0 {
		users, err := s.client.User.Query().
			Where(entuser.IDIn(actorIDs...)).
			All(ctx)
		if err != nil {
			logger.Error("failed to resolve history actors", zap.Error(err))
			return nil, err
		}
		for _, u := range users {
			names[u.ID] = u.Username
		}
	}

	items := make([]APIHistoryEntry, 0, len(rows))
	for _, e := range rows {
		items = append(items, historyToAPI(e, names[e.ActorID]))
	}
	return items, nil
}

// parseDateParam accepts either a date or a full RFC 3339 timestamp.
func parseDateParam(v string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", v); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, v)
}
