package ports

import "go.trai.ch/pali/internal/core/domain"

// Renderer formats a run report for the invoking user.
//
//go:generate go run go.uber.org/mock/mockgen -source=renderer.go -destination=mocks/mock_renderer.go -package=mocks
type Renderer interface {
	// RenderReport returns the human-readable rendering of the report.
	RenderReport(report *domain.Report) string
}
