package main

import (
	"os"
	"strings"

	"cardtable/internal/config"
	"cardtable/internal/rng"
	"cardtable/pkg/deck"

	"github.com/pterm/pterm"
	"github.com/sirupsen/logrus"
)

// Version is the demo version
var Version = "v0.0.0-dev"

func main() {
	setupLogger()

	cfg := config.Instance()

	d := deck.New()
	if cfg.Seed != 0 {
		d.SetRand(rng.NewSeeded(cfg.Seed))
	}
	if cfg.Shuffle {
		d.Shuffle()
	}

	logrus.WithFields(logrus.Fields{
		"version":  Version,
		"shuffled": cfg.Shuffle,
	}).Debug("deck ready")

	n := cfg.PreviewCount
	if n > d.Len() {
		n = d.Len()
	}

	hand := deck.Hand(d.Cards()[:n])
	pterm.DefaultSection.Printfln("The deck is created, first %d cards", n)
	for _, card := range hand {
		pterm.Println(card.DisplayName())
	}

	topCard := d.Draw()
	pterm.DefaultSection.Println("Top card")
	pterm.Println(topCard)

	if err := d.AddCard(topCard); err != nil {
		logrus.WithError(err).Fatal("could not return the top card")
	}
	pterm.DefaultSection.Println("Added card back")
	pterm.Printfln("The length is %d", d.Len())

	pterm.DefaultSection.Println("Accessing cards directly by index")
	for i := 0; i < n; i++ {
		pterm.Println(d.Card(i))
	}

	// yields the extremes only, not the full deck
	pterm.DefaultSection.Println("Iterating through the deck")
	for card := range d.Iter() {
		pterm.Println(card)
	}

	pterm.Printfln("The highest card in deck: %s", d.Max())
	pterm.Printfln("The lowest card in deck: %s", d.Min())
}

func setupLogger() {
	if lvl := config.Instance().Log.Level; lvl != "" {
		level, err := logrus.ParseLevel(lvl)
		if err != nil {
			logrus.WithError(err).Fatal("could not parse level")
		}

		logrus.SetLevel(level)
	}

	if strings.ToLower(os.Getenv("LOG_FORMAT")) == "json" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}
}
