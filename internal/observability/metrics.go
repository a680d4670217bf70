package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// PhotoUploadsTotal counts photo uploads by outcome.
	PhotoUploadsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "focal_photo_uploads_total",
		Help: "Total number of photo uploads by outcome",
	}, []string{"outcome"})

	// PhotoUploadBytes records the size of accepted uploads before resizing.
	PhotoUploadBytes = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "focal_photo_upload_bytes",
		Help:    "Size in bytes of accepted photo uploads",
		Buckets: prometheus.ExponentialBuckets(16*1024, 4, 6),
	})

	// BlobStoreErrors counts blob store failures by operation.
	BlobStoreErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "focal_blob_store_errors_total",
		Help: "Total number of blob store errors by operation",
	}, []string{"operation"})

	// FeedRequestsTotal counts feed page requests.
	FeedRequestsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "focal_feed_requests_total",
		Help: "Total number of feed requests",
	})

	// FeedPageSize records the effective page size of feed requests.
	FeedPageSize = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "focal_feed_page_size",
		Help:    "Effective items-per-page of feed requests",
		Buckets: []float64{10, 20, 50, 100},
	})

	// NotificationsCreated counts notification records by type.
	NotificationsCreated = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "focal_notifications_created_total",
		Help: "Total number of notification records created by type",
	}, []string{"type"})
)
