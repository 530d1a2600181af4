package stock

import (
	"fmt"
	"strings"
)

type Suggestion string

const (
	SuggestReduce Suggestion = "REDUCE"
	SuggestRemove Suggestion = "REMOVE"
)

type ShortfallLine struct {
	ProductID    string
	ProductTitle string
	Requested    int
	Available    int
	Message      string
	Suggestion   Suggestion
	// SuggestedQuantity is set for SuggestReduce.
	SuggestedQuantity int
	Remediation       string
}

type ShortfallReport struct {
	HasShortfall bool
	Lines        []ShortfallLine
	// CanProceedPartially is true when at least part of the request can be fulfilled.
	CanProceedPartially bool
	Summary             string
}

// BuildShortfallReport turns a bulk result into a message for a customer or operator.
func BuildShortfallReport(res BulkResult) ShortfallReport {
	report := ShortfallReport{}
	fulfillable := 0

	for _, it := range res.Items {
		if it.Valid {
			fulfillable++
		}
	}

	for _, it := range res.Failed {
		title := it.ProductTitle
		if title == "" {
			title = it.ProductID
		}
		line := ShortfallLine{
			ProductID:    it.ProductID,
			ProductTitle: title,
			Requested:    it.Requested,
			Available:    it.AvailableStock,
			Message:      it.Message,
		}
		if it.AvailableStock > 0 && it.Reason == ReasonInsufficientStock {
			line.Suggestion = SuggestReduce
			line.SuggestedQuantity = it.AvailableStock
			line.Remediation = fmt.Sprintf("reduce to %d", it.AvailableStock)
			fulfillable++
		} else {
			line.Suggestion = SuggestRemove
			switch it.Reason {
			case ReasonOutOfStock:
				line.Remediation = "remove, out of stock"
			case ReasonProductNotFound:
				line.Remediation = "remove, product no longer sold"
			case ReasonInvalidQuantity:
				line.Remediation = "remove, invalid quantity"
			default:
				line.Remediation = "remove, stock unknown"
			}
		}
		report.Lines = append(report.Lines, line)
	}

	report.HasShortfall = len(report.Lines) > 0
	report.CanProceedPartially = report.HasShortfall && fulfillable > 0

	switch {
	case !report.HasShortfall:
		report.Summary = "all items are available"
	default:
		parts := make([]string, 0, len(report.Lines))
		for _, l := range report.Lines {
			parts = append(parts, fmt.Sprintf("%s: %s", l.ProductTitle, l.Remediation))
		}
		report.Summary = fmt.Sprintf("%d of %d items cannot be fulfilled (%s)",
			len(report.Lines), len(res.Items), strings.Join(parts, "; "))
	}
	return report
}
