package metrics

import "time"

// RecordArticlesScraped records the number of records extracted from a page.
func RecordArticlesScraped(sourceURL string, count int) {
	ArticlesScrapedTotal.WithLabelValues(sourceURL).Add(float64(count))
}

// RecordArticleStored records one successfully persisted article.
func RecordArticleStored() {
	ArticlesStoredTotal.Inc()
}

// RecordArticleStoreFailure records one record dropped on a storage error.
func RecordArticleStoreFailure() {
	ArticleStoreFailuresTotal.Inc()
}

// RecordSummaryGenerated records one successful summarization.
func RecordSummaryGenerated(provider string) {
	SummariesGeneratedTotal.WithLabelValues(provider).Inc()
}

// RecordSummarizerFailure records one failed summarization attempt.
func RecordSummarizerFailure(provider string) {
	SummarizerFailuresTotal.WithLabelValues(provider).Inc()
}

// RecordSummarizationDuration records the time taken to generate a summary.
func RecordSummarizationDuration(duration time.Duration) {
	SummarizationDuration.Observe(duration.Seconds())
}
