package movesheet

import (
	"fmt"
	"io"
	"strings"

	"github.com/jung-kurt/gofpdf"

	"chess_analysis/internal/domain/game"
)

const lineHeight = 4.5

// Lines renders a game as move-list text, variations indented under the main line.
func Lines(g game.Game) []string {
	return appendLines(nil, g, 0)
}

func appendLines(lines []string, g game.Game, depth int) []string {
	indent := strings.Repeat("    ", depth)
	for _, move := range g.Moves {
		lines = append(lines, strings.TrimRight(fmt.Sprintf("%s%d. %s %s", indent, move.Number, move.White, move.BlackSan()), " "))
	}
	for i, variation := range g.Variations {
		lines = append(lines, fmt.Sprintf("%s  Variation %d:", indent, i+1))
		lines = appendLines(lines, variation, depth+1)
	}
	return lines
}

func render(state game.State) *gofpdf.Fpdf {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetFont("Courier", "", 10)

	if len(state.Games) == 0 {
		pdf.AddPage()
		pdf.Cell(40, 10, "No games loaded")
	}

	for i, g := range state.Games {
		pdf.AddPage()
		pdf.SetFont("Courier", "B", 12)
		pdf.Cell(40, 10, fmt.Sprintf("Game %d", i+1))
		pdf.Ln(10)
		pdf.SetFont("Courier", "", 10)

		for _, line := range Lines(g) {
			pdf.MultiCell(0, lineHeight, line, "", "L", false)
		}
	}

	if len(state.Library) > 0 {
		pdf.AddPage()
		pdf.SetFont("Courier", "B", 12)
		pdf.Cell(40, 10, "Library")
		pdf.Ln(10)
		pdf.SetFont("Courier", "", 10)
		for _, entry := range state.Library {
			pdf.MultiCell(0, lineHeight, entry.Name+": "+entry.Pgn, "", "L", false)
		}
	}
	return pdf
}

func Write(state game.State, w io.Writer) error {
	return render(state).Output(w)
}

func WriteFile(state game.State, output string) error {
	return render(state).OutputFileAndClose(output)
}
