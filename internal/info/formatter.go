// Package info renders progression data as human-readable text.
package info

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/osse101/DoughGuardian_Go/internal/catalog"
	"github.com/osse101/DoughGuardian_Go/internal/domain"
	"github.com/osse101/DoughGuardian_Go/internal/progression"
)

// Output formats
const (
	FormatText     = "text"
	FormatMarkdown = "markdown"
)

// Formatter provides locale-aware formatting for progression summaries
type Formatter struct {
	printer *message.Printer
	title   cases.Caser
}

// NewFormatter creates a formatter for the given language
func NewFormatter(tag language.Tag) *Formatter {
	return &Formatter{
		printer: message.NewPrinter(tag),
		title:   cases.Title(tag),
	}
}

// Amount formats a resource amount with one decimal and digit grouping
func (f *Formatter) Amount(v float64) string {
	return f.printer.Sprintf("%.1f", v)
}

// Name title-cases a catalog display name
func (f *Formatter) Name(name string) string {
	return f.title.String(name)
}

// Summary describes a player's progress in the requested format
func (f *Formatter) Summary(p progression.Progress, cat *catalog.Catalog, format string) string {
	bold := func(s string) string { return s }
	if strings.ToLower(format) == FormatMarkdown {
		bold = func(s string) string { return "**" + s + "**" }
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s: %s (%d/%d)\n", bold("Dough form"),
		f.Name(p.CurrentTier.Name), p.State.CurrentTierIndex+1, cat.TierCount())
	fmt.Fprintf(&b, "%s: %s (+%s/s)\n", bold("Harmony"), f.Amount(p.State.Harmony), f.rate(p.HarmonyRate))
	fmt.Fprintf(&b, "%s: %s (+%s/s)\n", bold("Essence"), f.Amount(p.State.Essence), f.rate(p.EssenceRate))

	if p.NextTier != nil {
		fmt.Fprintf(&b, "%s: %s in %s harmony\n", bold("Next form"),
			f.Name(p.NextTier.Name), f.Amount(p.HarmonyToNextTier))
	} else {
		fmt.Fprintf(&b, "%s: the dough is complete\n", bold("Next form"))
	}

	collected := len(p.State.RewardsCollected)
	if p.NextReward != nil {
		fmt.Fprintf(&b, "%s: in %s harmony (%d/%d collected)\n", bold("Next wisdom cookie"),
			f.Amount(p.HarmonyToNextReward), collected, cat.RewardCount())
	} else {
		fmt.Fprintf(&b, "%s: all %d collected\n", bold("Wisdom cookies"), collected)
	}

	fmt.Fprintf(&b, "%s: %s", bold("Dojo"), f.upgradeNames(p.State.UpgradesPurchased, cat))
	return b.String()
}

// Cookie renders a wisdom cookie's text
func (f *Formatter) Cookie(r domain.Reward) string {
	return fmt.Sprintf("%q\nMeditation: %s", r.Proverb, r.MeditationPrompt)
}

// CatalogSummary lists the catalog's contents
func (f *Formatter) CatalogSummary(cat *catalog.Catalog) string {
	var b strings.Builder
	balance := cat.Balance()

	fmt.Fprintf(&b, "Catalog version %s\n", orDash(cat.Version()))
	fmt.Fprintf(&b, "Base rates: %s harmony/s, %s essence/s\n", f.rate(balance.BaseHarmonyRate), f.rate(balance.BaseEssenceRate))
	fmt.Fprintf(&b, "Wisdom cookie every %s harmony\n", f.Amount(balance.RewardThreshold))

	fmt.Fprintf(&b, "Dough forms (%d):\n", cat.TierCount())
	for i, t := range cat.Tiers() {
		fmt.Fprintf(&b, "  %d. %s at %s harmony\n", i+1, f.Name(t.Name), f.Amount(t.RequiredHarmony))
	}

	fmt.Fprintf(&b, "Wisdom cookies (%d):\n", cat.RewardCount())
	for _, r := range cat.Rewards() {
		fmt.Fprintf(&b, "  %s: +%s essence\n", r.ID, f.Amount(r.EssenceYield))
	}

	upgrades := cat.Upgrades()
	fmt.Fprintf(&b, "Dojo upgrades (%d):\n", len(upgrades))
	for _, u := range upgrades {
		fmt.Fprintf(&b, "  %s: %s essence, +%s harmony/s, +%s essence/s\n",
			f.Name(u.Name), f.Amount(u.Cost), f.rate(u.HarmonyBoost), f.rate(u.EssenceBoost))
	}
	return strings.TrimRight(b.String(), "\n")
}

func (f *Formatter) rate(v float64) string {
	return f.printer.Sprintf("%.2f", v)
}

func (f *Formatter) upgradeNames(ids []string, cat *catalog.Catalog) string {
	if len(ids) == 0 {
		return "empty"
	}
	names := make([]string, 0, len(ids))
	for _, id := range ids {
		if u, ok := cat.Upgrade(id); ok {
			names = append(names, f.Name(u.Name))
		}
	}
	return strings.Join(names, ", ")
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
