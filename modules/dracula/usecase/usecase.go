package usecase

import (
	"github.com/soldracula/dracula/modules/dracula/datagateway"
	"github.com/soldracula/dracula/modules/dracula/internal/coordinator"
	"github.com/soldracula/dracula/modules/dracula/internal/verifier"
	"github.com/soldracula/dracula/pkg/storyclient"
)

type Usecase struct {
	verifier    *verifier.Verifier
	coordinator *coordinator.Coordinator
	storyWriter datagateway.StoryWriter
	progressDg  datagateway.ProgressDataGateway
	writer      storyclient.WriterMetadata
}

func New(
	verifier *verifier.Verifier,
	coordinator *coordinator.Coordinator,
	storyWriter datagateway.StoryWriter,
	progressDg datagateway.ProgressDataGateway,
	writer storyclient.WriterMetadata,
) *Usecase {
	return &Usecase{
		verifier:    verifier,
		coordinator: coordinator,
		storyWriter: storyWriter,
		progressDg:  progressDg,
		writer:      writer,
	}
}
