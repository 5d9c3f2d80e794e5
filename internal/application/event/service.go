package event

import (
	"fmt"
	"time"
)

type Service struct {
	repo     EventRepo
	venues   VenueDirectory
	notifier CancelNotifier
	pub      EventPublisher
	cache    Cache
	clock    Clock

	ttlDetails time.Duration
}

func New(
	repo EventRepo,
	venues VenueDirectory,
	clock Clock,
	notifier CancelNotifier,
	pub EventPublisher,
	cache Cache,
	ttlDetails time.Duration,
) *Service {
	if notifier == nil {
		notifier = NoopNotifier{}
	}
	if pub == nil {
		pub = NoopPublisher{}
	}
	if ttlDetails == 0 {
		ttlDetails = 5 * time.Minute
	}

	return &Service{
		repo:       repo,
		venues:     venues,
		notifier:   notifier,
		pub:        pub,
		cache:      cache,
		clock:      clock,
		ttlDetails: ttlDetails,
	}
}

func cacheKeyEventDetails(id int64) string {
	return fmt.Sprintf("event:%d", id)
}
