package models

import (
	"time"

	"github.com/gin-gonic/gin"
)

// RateLimitKey is the gin context key the rate limiter stores its
// RateLimitInfo under.
const RateLimitKey = "rateLimit"

// ApiResponse is the envelope every JSON endpoint answers with.
type ApiResponse struct {
	Message         string         `json:"message"`
	Data            any            `json:"data,omitempty"`
	Error           bool           `json:"error,omitempty"`
	Meta            *Pagination    `json:"meta"`
	Rate            *RateLimitInfo `json:"rate_limit,omitempty"`
	RequestedEntity string         `json:"requested_entity,omitempty"`
}

type Pagination struct {
	Page       int `json:"page" example:"1"`
	Limit      int `json:"limit" example:"10"`
	Total      int `json:"total" example:"42"`
	TotalPages int `json:"total_pages" example:"5"`
}

// RateLimitInfo describes the caller's remaining budget on a limited route.
type RateLimitInfo struct {
	Limit          int       `json:"limit"`
	Remaining      int       `json:"remaining"`
	ResetAt        time.Time `json:"reset_at"`
	ResetInSeconds int       `json:"reset_in_seconds"`
}

func rateFrom(c *gin.Context) *RateLimitInfo {
	if c == nil {
		return nil
	}
	info, _ := c.Value(RateLimitKey).(*RateLimitInfo)
	return info
}

func envelope(c *gin.Context, message string) ApiResponse {
	resp := ApiResponse{Message: message, Rate: rateFrom(c)}
	if c != nil && c.Request != nil {
		resp.RequestedEntity = c.Request.Method + " " + c.FullPath()
	}
	return resp
}

func SuccessResponse(c *gin.Context, message string, data any) ApiResponse {
	resp := envelope(c, message)
	resp.Data = data
	return resp
}

func PaginatedResponse(c *gin.Context, message string, data any, meta *Pagination) ApiResponse {
	resp := SuccessResponse(c, message, data)
	resp.Meta = meta
	return resp
}

// NewPagination fills in total pages from total and limit.
func NewPagination(page, limit, total int) *Pagination {
	pages := 0
	if limit > 0 {
		pages = (total + limit - 1) / limit
	}
	return &Pagination{Page: page, Limit: limit, Total: total, TotalPages: pages}
}

// ValidationErrorResponse carries per-field messages in Data.
func ValidationErrorResponse(c *gin.Context, message string, fields map[string]string) ApiResponse {
	resp := ErrorResponse(c, message)
	resp.Data = gin.H{"fields": fields}
	return resp
}

func ErrorResponse(c *gin.Context, message string) ApiResponse {
	resp := envelope(c, message)
	resp.Error = true
	return resp
}
