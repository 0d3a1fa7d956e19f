package dracula

import (
	"github.com/samber/lo"
	"github.com/soldracula/dracula/pkg/storyclient"
)

const (
	helpText   = "Castlevania: Symphony of the Night"
	richterImg = "http://soldracula.is/static/richter.jpg"
	draculaImg = "http://soldracula.is/static/dracula.jpg"
)

type line struct {
	speaker string
	img     string
	text    string
}

// dialogue must be appended in this order, it is a conversation.
var dialogue = []line{
	{"Richter:", richterImg, "Die monster. You don’t belong in this world!"},
	{"Dracula:", draculaImg, "It was not by my hand I was once again given flesh. I was brought here by humans who wished to pay me tribute!"},
	{"Richter:", richterImg, "Tribute!? You steal men’s souls, and make them your slaves!"},
	{"Dracula:", draculaImg, "Perhaps the same could be said of all religions… "},
	{"Richter:", richterImg, "Your words are as empty as your soul! Mankind ill needs a savior such as you!"},
	{"Dracula:", draculaImg, "What is a man? A miserable little pile of secrets. But enough talk… Have at you!"},
}

// Script returns a fresh copy of the story items every asset receives.
func Script() []storyclient.Item {
	return lo.Map(dialogue, func(l line, _ int) storyclient.Item {
		return storyclient.Item{
			Type: storyclient.ItemTypeItem,
			Display: storyclient.Display{
				Label:       l.speaker,
				Description: l.text,
				HelpText:    helpText,
				Img:         l.img,
			},
			Data: map[string]any{},
		}
	})
}
