package world

import (
	"fmt"
	"io"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/redshift-games/tyrian-world/pkg/items"
	"github.com/redshift-games/tyrian-world/pkg/options"
)

// WriteSpoiler renders the human-readable spoiler: where every level
// item ended up, the rolled special weapon and twiddles, shop prices,
// and boss weaknesses when those are in play. placements may be nil,
// in which case level holders show as unplaced.
func (w *World) WriteSpoiler(out io.Writer, placements Placements) error {
	sw := &spoilerWriter{out: out, money: message.NewPrinter(language.English)}

	sw.printf("Level locations:\n\n")
	holders := levelHolders(placements)
	for _, level := range w.AllLevels {
		switch {
		case w.hasPrecollected(level):
			sw.printf("%s: Start\n", level)
		case holders[level] != "":
			sw.printf("%s: %s\n", level, holders[level])
		default:
			sw.printf("%s: (unplaced)\n", level)
		}
	}

	sw.printf("\nSpecial Weapon:\n")
	if w.SingleSpecial != "" {
		sw.printf("%s\n", w.SingleSpecial)
	} else {
		sw.printf("None\n")
	}

	sw.printf("\nTwiddles:\n")
	if len(w.Twiddles) == 0 {
		sw.printf("None\n")
	} else {
		for _, t := range w.Twiddles {
			sw.printf("%s\n", t.SpoilerString())
		}
	}

	if w.Options.BossWeaknesses {
		sw.printf("\nBoss weaknesses:\n")
		for _, ep := range w.Options.GoalEpisodes() {
			sw.printf("Episode %d: %s\n", ep, w.BossWeaknesses[ep])
		}
	}

	if w.Options.ShopMode != options.ShopsNone {
		sw.printf("\nShop prices:\n")
		for _, l := range w.Locations {
			if l.IsShop() {
				sw.moneyf("%s: %d Credits\n", l.Name, l.ShopPrice)
			}
		}
	}

	return sw.err
}

// levelHolders maps level item names to the location holding them.
func levelHolders(placements Placements) map[string]string {
	holders := make(map[string]string)
	if placements == nil {
		return holders
	}
	byID := make(map[int]string)
	for _, d := range items.Levels {
		byID[d.ID()] = d.Name
	}
	for locName, p := range placements {
		if !p.ThisWorld {
			continue
		}
		if level, ok := byID[p.ItemID]; ok {
			holders[level] = locName
		}
	}
	return holders
}

// spoilerWriter folds write errors so section code stays flat.
type spoilerWriter struct {
	out   io.Writer
	money *message.Printer
	err   error
}

func (s *spoilerWriter) printf(format string, args ...any) {
	if s.err != nil {
		return
	}
	_, s.err = fmt.Fprintf(s.out, format, args...)
}

// moneyf formats like printf but with digit grouping on numbers.
func (s *spoilerWriter) moneyf(format string, args ...any) {
	if s.err != nil {
		return
	}
	_, s.err = s.money.Fprintf(s.out, format, args...)
}
