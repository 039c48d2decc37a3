package models

import "time"

type ChatQueryRequest struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	Query  string `json:"query"`
}

type ChatQueryResponse struct {
	User      UserContext `json:"user"`
	Message   ChatMessage `json:"message"`
	Timestamp time.Time   `json:"timestamp"`
}

type TranscriptResponse struct {
	UserID   string        `json:"user_id"`
	Messages []ChatMessage `json:"messages"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type HealthResponse struct {
	Status   string    `json:"status"`
	Sessions int       `json:"sessions"`
	Time     time.Time `json:"timestamp"`
}
