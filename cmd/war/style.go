package main

import (
	"strconv"
	"time"

	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"

	"github.com/luca-patrignani/war/client"
	"github.com/luca-patrignani/war/domain/war"
)

func printBanner() {
	pterm.DefaultBigText.WithLetters(
		putils.LettersFromStringWithStyle("W", pterm.FgRed.ToStyle()),
		putils.LettersFromStringWithStyle("ar", pterm.FgDarkGray.ToStyle()),
	).Render()
}

func outcomeText(o war.Outcome) string {
	switch o {
	case war.Win:
		return pterm.LightGreen(o.String())
	case war.Lose:
		return pterm.LightRed(o.String())
	default:
		return pterm.LightYellow(o.String())
	}
}

// printResult shows every round of a game and the final verdict.
func printResult(res client.Result) {
	data := pterm.TableData{{"Round", "Card", "Result"}}
	for i, o := range res.Outcomes {
		data = append(data, []string{strconv.Itoa(i + 1), res.Hand[i].String(), outcomeText(o)})
	}
	table, _ := pterm.DefaultTable.WithHasHeader().WithBoxed().WithData(data).Srender()
	pbox := pterm.DefaultBox.WithHorizontalPadding(4).WithTopPadding(1).WithBottomPadding(1)
	verdict := pterm.Panel{Data: pbox.WithTitle(pterm.LightCyan("|VERDICT|")).WithTitleTopCenter().
		Sprintf("I %s\nScore: %d", res.Verdict(), res.Score)}
	pterm.DefaultPanel.WithPanels([][]pterm.Panel{
		{{Data: table}, verdict},
	}).Render()
}

func printSummary(s client.Summary) {
	pterm.DefaultTable.WithHasHeader().WithBoxed().WithData(pterm.TableData{
		{"Completed", "Failed", "Won", "Lost", "Drew", "Elapsed"},
		{
			strconv.Itoa(s.Completed),
			strconv.Itoa(s.Failed),
			strconv.Itoa(s.Won),
			strconv.Itoa(s.Lost),
			strconv.Itoa(s.Drew),
			s.Elapsed.Round(time.Millisecond).String(),
		},
	}).Render()
}
