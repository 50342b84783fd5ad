// ABOUTME: Mappers for converting reports and scored articles to API DTOs
// ABOUTME: Keeps the JSON shape independent of the domain model

package mappers

import (
	"news-sentiment-dashboard/api/dto/responses"
	"news-sentiment-dashboard/core/domain"
)

// ToReportResponse converts a domain Report to a ReportResponse DTO
func ToReportResponse(report *domain.Report, includeBody bool) *responses.ReportResponse {
	if report == nil {
		return nil
	}

	response := &responses.ReportResponse{
		GeneratedAt:        report.GeneratedAt,
		Source:             report.Source,
		TotalArticles:      len(report.Articles),
		Articles:           make([]responses.ArticleResponse, 0, len(report.Articles)),
		SubjectivityCounts: toCountResponses(report.SubjectivityCounts),
		SentimentCounts:    toCountResponses(report.SentimentCounts),
	}

	for _, a := range report.Articles {
		response.Articles = append(response.Articles, ToArticleResponse(a, includeBody))
	}

	return response
}

// ToArticleResponse converts a scored article to an ArticleResponse DTO
func ToArticleResponse(a domain.ScoredArticle, includeBody bool) responses.ArticleResponse {
	response := responses.ArticleResponse{
		Title:                a.Title,
		URL:                  a.URL,
		Source:               a.Source,
		SubjectivityScore:    a.SubjectivityScore,
		SubjectivityCategory: string(a.SubjectivityCategory),
		SentimentScore:       a.SentimentScore,
		SentimentCategory:    string(a.SentimentCategory),
	}
	if !a.PublishedAt.IsZero() {
		published := a.PublishedAt
		response.PublishedAt = &published
	}
	if includeBody {
		response.Body = a.BodyText
	}
	return response
}

func toCountResponses(counts []domain.CategoryCount) []responses.CategoryCountResponse {
	out := make([]responses.CategoryCountResponse, 0, len(counts))
	for _, c := range counts {
		out = append(out, responses.CategoryCountResponse{Label: c.Label, Count: c.Count})
	}
	return out
}
