package service

import (
	"time"

	"github.com/leafcorps/medic-bot/internal/domain/contract"
)

type Instance struct {
	Medic     *medicService
	Scheduler *scheduler
}

func NewInstance(dm contract.DataManager, slackClient contract.SlackClient, rebuildInterval time.Duration) *Instance {
	medicService := newMedic(dm, slackClient)

	return &Instance{
		Medic:     medicService,
		Scheduler: newScheduler(medicService, rebuildInterval),
	}
}
