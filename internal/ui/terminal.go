package ui

import (
	"dirdiff/internal/data"
	"dirdiff/internal/data/diff_state"
	"dirdiff/internal/util"
	"fmt"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/pterm/pterm"
)

const reportWidth = 70

// TerminalReport renders a DiffResult to the terminal. Whether hunk bodies
// are included is controlled by showContent.
type TerminalReport struct {
	result      *data.DiffResult
	configPath  string
	showContent bool
}

func NewTerminalReport(result *data.DiffResult, configPath string, showContent bool) *TerminalReport {
	return &TerminalReport{
		result:      result,
		configPath:  configPath,
		showContent: showContent,
	}
}

func (report *TerminalReport) Print() {
	report.printHeader()
	report.printOverview()
	report.printTypeBreakdown()
	report.printFileLists()
	report.printModifiedFiles()
	report.printWarnings()

	if report.result.Added == 0 && report.result.Deleted == 0 &&
		report.result.Modified == 0 && report.result.BinaryModified == 0 {
		pterm.Println()
		pterm.Println(pterm.Green("  ✓ No differences found! The folders are identical."))
	}

	pterm.Println()
	pterm.Println(pterm.Bold.Sprint(strings.Repeat("═", reportWidth)))
}

func (report *TerminalReport) printHeader() {
	pterm.Println()
	pterm.Println(pterm.Bold.Sprint(strings.Repeat("═", reportWidth)))
	pterm.Println(pterm.Bold.Sprint("  DIRECTORY DIFF REPORT"))
	pterm.Println(pterm.Bold.Sprint(strings.Repeat("═", reportWidth)))
	pterm.Printfln("  %s  %s", pterm.Gray("Original: "), report.result.OriginalRoot)
	pterm.Printfln("  %s  %s", pterm.Gray("Modified: "), report.result.ModifiedRoot)
	pterm.Printfln("  %s  %s", pterm.Gray("Config:   "), report.configPath)
	pterm.Printfln("  %s  %s", pterm.Gray("Timestamp:"), time.Now().Format("2006-01-02 15:04:05"))
	pterm.Println(pterm.Bold.Sprint(strings.Repeat("─", reportWidth)))
}

func (report *TerminalReport) printOverview() {
	result := report.result
	pterm.Println()
	pterm.Println(pterm.Bold.Sprint("  OVERVIEW"))
	pterm.Printfln("  Files in Original:      %d", result.OriginalFiles)
	pterm.Printfln("  Files in Modified:      %d", result.ModifiedFiles)
	pterm.Printfln("  Unchanged:              %s", pterm.Gray(result.Unchanged))
	pterm.Println(pterm.Green(fmt.Sprintf("  + New Files:            %d", result.Added)))
	pterm.Println(pterm.Red(fmt.Sprintf("  - Deleted Files:        %d", result.Deleted)))
	pterm.Println(pterm.Yellow(fmt.Sprintf("  ~ Modified Files:       %d", result.Modified)))
	pterm.Println(pterm.Magenta(fmt.Sprintf("  ~ Binary Modified:      %d", result.BinaryModified)))
	pterm.Println(pterm.Cyan(fmt.Sprintf("  Lines Added:            +%d", result.LinesAdded)))
	pterm.Println(pterm.Red(fmt.Sprintf("  Lines Removed:          -%d", result.LinesRemoved)))
}

func (report *TerminalReport) printTypeBreakdown() {
	breakdown := report.result.TypeBreakdown
	if len(breakdown) == 0 {
		return
	}

	pterm.Println()
	pterm.Println(pterm.Bold.Sprint("  BY FILE TYPE"))
	for _, typeTag := range util.SortedKeys(breakdown) {
		stats := breakdown[typeTag]
		var parts []string
		if stats.Added > 0 {
			parts = append(parts, pterm.Green(fmt.Sprintf("+%d", stats.Added)))
		}
		if stats.Deleted > 0 {
			parts = append(parts, pterm.Red(fmt.Sprintf("-%d", stats.Deleted)))
		}
		if stats.Modified > 0 {
			parts = append(parts, pterm.Yellow(fmt.Sprintf("~%d", stats.Modified)))
		}
		pterm.Printfln("    %-20s %s", typeTag, strings.Join(parts, " "))
	}
}

func (report *TerminalReport) printFileLists() {
	added := report.filesWithStatus(diff_state.Added)
	deleted := report.filesWithStatus(diff_state.Deleted)
	binaryModified := report.filesWithStatus(diff_state.BinaryModified)

	if len(added) > 0 {
		report.printSectionTitle(pterm.Green(fmt.Sprintf("NEW FILES (%d)", len(added))))
		for _, file := range added {
			pterm.Printfln("    %s  %s",
				pterm.Green("+ "+file.RelativePath),
				pterm.Gray("("+humanize.Bytes(uint64(file.ModifiedSize))+")"))
		}
	}

	if len(deleted) > 0 {
		report.printSectionTitle(pterm.Red(fmt.Sprintf("DELETED FILES (%d)", len(deleted))))
		for _, file := range deleted {
			pterm.Printfln("    %s  %s",
				pterm.Red("- "+file.RelativePath),
				pterm.Gray("("+humanize.Bytes(uint64(file.OriginalSize))+")"))
		}
	}

	if len(binaryModified) > 0 {
		report.printSectionTitle(pterm.Magenta(fmt.Sprintf("BINARY MODIFIED (%d)", len(binaryModified))))
		for _, file := range binaryModified {
			pterm.Printfln("    %s  %s",
				pterm.Magenta("~ "+file.RelativePath),
				pterm.Gray(fmt.Sprintf("(%s → %s)",
					humanize.Bytes(uint64(file.OriginalSize)),
					humanize.Bytes(uint64(file.ModifiedSize)))))
		}
	}
}

func (report *TerminalReport) printModifiedFiles() {
	modified := report.filesWithStatus(diff_state.Modified)
	if len(modified) == 0 {
		return
	}

	report.printSectionTitle(pterm.Yellow(fmt.Sprintf("MODIFIED FILES (%d)", len(modified))))

	for _, file := range modified {
		pterm.Println()
		pterm.Printfln("    %s  %s  %s %s",
			pterm.Yellow("~ "+file.RelativePath),
			pterm.Gray(fmt.Sprintf("(%s → %s)",
				humanize.Bytes(uint64(file.OriginalSize)),
				humanize.Bytes(uint64(file.ModifiedSize)))),
			pterm.Green(fmt.Sprintf("+%d", file.LinesAdded)),
			pterm.Red(fmt.Sprintf("-%d", file.LinesRemoved)))

		if !report.showContent {
			continue
		}
		for _, hunk := range file.Hunks {
			pterm.Println(pterm.Cyan(fmt.Sprintf("      @@ -%d,%d +%d,%d @@",
				hunk.OriginalStart, hunk.OriginalCount,
				hunk.ModifiedStart, hunk.ModifiedCount)))
			for _, line := range hunk.Lines {
				switch line.Type {
				case data.DiffLineAdded:
					pterm.Println(pterm.Green("      +" + line.Content))
				case data.DiffLineRemoved:
					pterm.Println(pterm.Red("      -" + line.Content))
				default:
					pterm.Println(pterm.Gray("       " + line.Content))
				}
			}
		}
	}
}

func (report *TerminalReport) printWarnings() {
	if len(report.result.Warnings) == 0 {
		return
	}

	report.printSectionTitle(pterm.Yellow(fmt.Sprintf("WARNINGS (%d)", len(report.result.Warnings))))
	for _, warning := range report.result.Warnings {
		pterm.Println(pterm.Yellow("    ! " + warning))
	}
}

func (report *TerminalReport) printSectionTitle(title string) {
	pterm.Println()
	pterm.Println(pterm.Bold.Sprint(strings.Repeat("─", reportWidth)))
	pterm.Printfln("  %s", title)
}

func (report *TerminalReport) filesWithStatus(status diff_state.DiffState) []data.FileDiff {
	var result []data.FileDiff
	for _, file := range report.result.Files {
		if file.Status == status {
			result = append(result, file)
		}
	}
	return result
}
