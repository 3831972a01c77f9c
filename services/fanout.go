package services

import "github.com/Techkepper/PoskepperApi/pkg/metrics"

// FanoutPublisher hands every event to each sink in order.
type FanoutPublisher []Publisher

func (f FanoutPublisher) Publish(event string, payload any) {
	metrics.RecordEvent(event)
	for _, p := range f {
		if p != nil {
			p.Publish(event, payload)
		}
	}
}
