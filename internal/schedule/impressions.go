package schedule

// Impressions derives the press-sheet pass count for an order: sheets are
// the finished quantity divided by ups-per-sheet rounded up, then scaled by
// the overs buffer and truncated toward zero. 100000 pieces at 12 ups with
// 2% overs is ceil(100000/12)=8334 sheets, 8334*1.02 truncated to 8500.
func Impressions(finishedQty, upsPerSheet int, oversPct float64) (int, error) {
	if finishedQty <= 0 {
		return 0, invalidf("finished_qty", "must be positive, got %d", finishedQty)
	}
	if upsPerSheet <= 0 {
		return 0, invalidf("ups_per_sheet", "must be positive, got %d", upsPerSheet)
	}
	if oversPct < 0 {
		return 0, invalidf("overs_pct", "must not be negative, got %v", oversPct)
	}
	sheets := (finishedQty + upsPerSheet - 1) / upsPerSheet
	return int(float64(sheets) * (1 + oversPct/100)), nil
}
