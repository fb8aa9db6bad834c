package mypublisher

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/P0RTNOY/IronMind/lib/myevents"
	"github.com/P0RTNOY/IronMind/lib/mylog"
	"github.com/P0RTNOY/IronMind/lib/mypubsub"
	"github.com/P0RTNOY/IronMind/lib/mytime"
)

type publisher struct {
	pubsub    mypubsub.PubSub
	enveloper enveloper
	logger    mylog.Logger
}

// Use dependency injection to isolate the infrastructure and easy testing
func New(c context.Context, nower mytime.Nower) (Publisher, func(), error) {
	pubsub, pubsubCleanup, err := mypubsub.New(c)
	if err != nil {
		return nil, nil, fmt.Errorf("error creating pubsub: %s", err)
	}

	return &publisher{
		pubsub:    pubsub,
		enveloper: newEnveloper(nower),
		logger:    mylog.New("publisher"),
	}, pubsubCleanup, nil
}

func (p *publisher) CreateTopic(c context.Context, topic string) error {
	return p.pubsub.CreateTopic(c, topic)
}

func (p *publisher) Publish(c context.Context, topic string, event myevents.Event) error {
	envelope, err := p.enveloper.do(topic, event)
	if err != nil {
		return fmt.Errorf("error creating envelope: %s", err)
	}

	jsonBytes, err := json.Marshal(envelope)
	if err != nil {
		return fmt.Errorf("error serializing event %s: %s", envelope, err)
	}

	err = p.pubsub.Publish(c, envelope.Topic, string(jsonBytes))
	if err != nil {
		return fmt.Errorf("error publishing event %s: %s", envelope, err)
	}

	p.logger.Log(c, envelope.UID, mylog.SeverityInfo, "Published event %s", envelope)

	return nil
}
