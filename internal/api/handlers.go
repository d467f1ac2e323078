package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"newsrecap/internal/naver"
	"newsrecap/internal/recap"

	"github.com/gin-gonic/gin"
)

const (
	homeMessage          = "Hello, FastAPI is running!"
	newsFailureDetailPre = "네이버 뉴스 API 호출 실패: "
	internalFailure      = "요청 처리 실패: "
)

type QueryHandler interface {
	Handle(ctx context.Context, query string) (recap.Result, error)
}

type Handler struct {
	service QueryHandler
	log     *slog.Logger
}

func NewHandler(service QueryHandler, log *slog.Logger) *Handler {
	return &Handler{service: service, log: log}
}

// GetHome answers the liveness probe.
func (h *Handler) GetHome(c *gin.Context) {
	c.JSON(http.StatusOK, MessageResponse{Message: homeMessage})
}

// GetCustomAPI answers a query with a usage hint, news summaries or a direct summary.
func (h *Handler) GetCustomAPI(c *gin.Context) {
	ctx := c.Request.Context()
	query := c.Query("query")

	res, err := h.service.Handle(ctx, query)
	if err != nil {
		var upstreamErr *naver.UpstreamError
		if errors.As(err, &upstreamErr) {
			h.log.ErrorContext(ctx, "Failed to search news",
				"error", err,
				"query", query,
				"status", upstreamErr.StatusCode,
				"requestID", requestID(c))

			c.JSON(http.StatusInternalServerError, ErrorResponse{Detail: newsFailureDetailPre + upstreamErr.Error()})
			return
		}

		h.log.ErrorContext(ctx, "Failed to handle query",
			"error", err,
			"query", query,
			"requestID", requestID(c))

		c.JSON(http.StatusInternalServerError, ErrorResponse{Detail: internalFailure + err.Error()})
		return
	}

	switch res.Branch {
	case recap.BranchNoQuery:
		c.JSON(http.StatusOK, MessageResponse{Message: res.UsageHint})

	case recap.BranchNewsAndSummarize:
		news := make([]SummarizedNewsResponse, 0, len(res.SummarizedNews))
		for _, item := range res.SummarizedNews {
			news = append(news, SummarizedNewsResponse{
				Title:   item.Title,
				Link:    item.Link,
				Summary: item.Summary,
			})
		}

		c.JSON(http.StatusOK, RecapResponse{Query: res.Query, SummarizedNews: news})

	default:
		c.JSON(http.StatusOK, DirectAnswerResponse{Query: res.Query, GPTSummary: res.DirectSummary})
	}
}
