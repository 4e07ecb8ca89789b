package api

import (
	"net/http"
	"strconv"

	"github.com/alexanderramin/babylog/internal/domain"
	"github.com/gin-gonic/gin"
)

func (s *Server) getProfile(c *gin.Context) {
	p, err := s.profiles.GetProfile(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toProfileJSON(p))
}

func (s *Server) updateProfile(c *gin.Context) {
	var body profileJSON
	if err := c.ShouldBindJSON(&body); err != nil {
		badRequest(c, "body", err.Error())
		return
	}
	p, err := body.toDomain()
	if err != nil {
		writeError(c, err)
		return
	}
	stored, err := s.profiles.UpdateProfile(c.Request.Context(), p)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toProfileJSON(stored))
}

func (s *Server) listRecords(c *gin.Context) {
	limit := 0
	if v := c.Query("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			badRequest(c, "limit", "must be an integer")
			return
		}
		limit = n
	}
	recs, err := s.records.ListRecords(c.Request.Context(), limit)
	if err != nil {
		writeError(c, err)
		return
	}
	total, err := s.records.CountRecords(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.Header("X-Total-Count", strconv.Itoa(total))
	c.JSON(http.StatusOK, toRecordsJSON(recs))
}

func (s *Server) getRecord(c *gin.Context) {
	rec, err := s.records.GetRecord(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toRecordJSON(rec))
}

func (s *Server) addRecord(c *gin.Context) {
	var body recordJSON
	if err := c.ShouldBindJSON(&body); err != nil {
		badRequest(c, "body", err.Error())
		return
	}
	if body.TZ == "" {
		body.TZ = c.Query("tz")
	}
	rec, err := body.toDomain(s.now())
	if err != nil {
		writeError(c, err)
		return
	}
	created, err := s.records.AddRecord(c.Request.Context(), rec)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toRecordJSON(created))
}

func (s *Server) deleteRecord(c *gin.Context) {
	if err := s.records.DeleteRecord(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// dailyStats defaults to today when date is omitted.
func (s *Server) dailyStats(c *gin.Context) {
	date := c.DefaultQuery("date", domain.DayKey(s.now()))
	st, err := s.stats.DailyStats(c.Request.Context(), date)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toDailyStatsJSON(st))
}

func (s *Server) weeklyStats(c *gin.Context) {
	anchor := c.DefaultQuery("anchor", domain.DayKey(s.now()))
	points, err := s.stats.WeeklyPumpingSeries(c.Request.Context(), anchor)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toWeeklyJSON(points))
}
