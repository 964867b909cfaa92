package publisher

import (
	"encoding/json"

	"github.com/yoxaz-verse/obaol-rate-service/internal/domain"
)

// Topics for the domain events the engines publish. Publishing is best-effort:
// a failed publish is logged by the caller and never fails the request.
const (
	TopicRateEvents    = "rate-events"
	TopicEnquiryEvents = "enquiry-events"
	TopicProjectEvents = "project-events"
)

type RateEvent struct {
	RateID      string  `json:"rate_id"`
	AssociateID string  `json:"associate_id"`
	Action      string  `json:"action"` // created, updated, deactivated
	Rate        float64 `json:"rate"`
	IsLive      bool    `json:"is_live"`
	CoolingEdit bool    `json:"cooling_edit,omitempty"`
}

type EnquiryEvent struct {
	EnquiryID          string  `json:"enquiry_id"`
	VariantRateID      string  `json:"variant_rate_id"`
	ProductAssociateID string  `json:"product_associate_id"`
	Rate               float64 `json:"rate"`
}

type ProjectEvent struct {
	ProjectID string `json:"project_id"`
	Status    string `json:"status"`
}

func PublishRateEvent(pub domain.PublisherPort, event RateEvent) error {
	v, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return pub.Publish(TopicRateEvents, domain.Message{Key: []byte(event.AssociateID), Value: v})
}

func PublishEnquiryEvent(pub domain.PublisherPort, event EnquiryEvent) error {
	v, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return pub.Publish(TopicEnquiryEvents, domain.Message{Key: []byte(event.ProductAssociateID), Value: v})
}

func PublishProjectEvent(pub domain.PublisherPort, event ProjectEvent) error {
	v, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return pub.Publish(TopicProjectEvents, domain.Message{Key: []byte(event.ProjectID), Value: v})
}
