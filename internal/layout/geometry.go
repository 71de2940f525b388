package layout

import (
	"fmt"
	"math"

	"heartdrop/internal/domain"
)

// Card gap, fixed across all profiles.
const gridGap = "1rem"

var searchMargins = map[string]string{
	"top-16": "4.5rem",
	"top-34": "5.5rem",
	"top-38": "6.5rem",
}

const defaultSearchMargin = "4.5rem"

// SearchMargin reserves vertical space for the search bar. Only touch devices
// need it, only while a search term is active, and only on layouts narrow
// enough for the bar to overlap the grid.
func SearchMargin(cfg domain.LayoutConfig, searchActive, touch bool) string {
	if !touch || !searchActive || cfg.Cols > 4 {
		return "0"
	}
	if m, ok := searchMargins[cfg.SearchBarTop]; ok {
		return m
	}
	return defaultSearchMargin
}

// Grid computes the style descriptor for the grid element.
func Grid(cfg domain.LayoutConfig, searchActive, touch bool) domain.GridStyle {
	pb := cfg.PaddingBottom
	if pb == "" {
		pb = gridGap
	}
	return domain.GridStyle{
		TemplateColumns: fmt.Sprintf("repeat(%d, minmax(0, 1fr))", cfg.Cols),
		MarginTop:       SearchMargin(cfg, searchActive, touch),
		PaddingBottom:   pb,
	}
}

func Card(cfg domain.LayoutConfig) domain.CardStyle {
	return domain.CardStyle{
		Width:     cfg.CardWidth,
		Height:    cfg.CardHeight,
		MaxWidth:  cfg.MaxCardWidth,
		MaxHeight: cfg.MaxCardHeight,
	}
}

// Container computes the outer box. The max-width clamp only applies when the
// profile bounds its card size (mobile), where cards are viewport fractions.
func Container(cfg domain.LayoutConfig) domain.ContainerStyle {
	st := domain.ContainerStyle{
		Width:  cfg.ContainerWidth,
		Height: cfg.ContainerHeight,
	}
	if cfg.MaxCardWidth != "" {
		st.MaxWidth = fmt.Sprintf("calc(%d * %s + %d * %s)", cfg.Cols, cfg.MaxCardWidth, cfg.Cols-1, gridGap)
	}
	return st
}

// WindowItem places one card inside the virtualized scroll window.
type WindowItem struct {
	Index int     `json:"index"`
	Row   int     `json:"row"`
	Col   int     `json:"col"`
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
}

// Window is the visible slice of a virtualized grid plus the total scroll
// height backing it.
type Window struct {
	Items       []WindowItem `json:"items"`
	TotalHeight float64      `json:"totalHeight"`
}

// VisibleWindow computes which cards fall inside the scroll viewport, with a
// one-row lead-in and trailing buffer. Pixel units throughout.
func VisibleWindow(count int, containerW, containerH, scrollTop, cardW, cardH, gap float64) Window {
	if count <= 0 || containerW <= 0 {
		return Window{}
	}
	cols := int((containerW + gap) / (cardW + gap))
	if cols < 1 {
		cols = 1
	}
	rowHeight := cardH + gap
	totalRows := int(math.Ceil(float64(count) / float64(cols)))

	visibleRows := int(math.Ceil(containerH/rowHeight)) + 2
	startRow := int(scrollTop/rowHeight) - 1
	if startRow < 0 {
		startRow = 0
	}
	endRow := startRow + visibleRows
	if endRow > totalRows {
		endRow = totalRows
	}

	var items []WindowItem
	for row := startRow; row < endRow; row++ {
		for col := 0; col < cols; col++ {
			idx := row*cols + col
			if idx >= count {
				break
			}
			items = append(items, WindowItem{
				Index: idx,
				Row:   row,
				Col:   col,
				X:     float64(col) * (cardW + gap),
				Y:     float64(row) * rowHeight,
			})
		}
	}
	return Window{Items: items, TotalHeight: float64(totalRows) * rowHeight}
}
