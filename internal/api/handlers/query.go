package handlers

import (
	"strconv"
	"strings"
	"time"

	"receipt-ledger/domain"

	"github.com/gofiber/fiber/v2"
)

const (
	defaultPage  = 1
	defaultLimit = 20
	maxLimit     = 100
)

func pageParams(c *fiber.Ctx) (int, int) {
	page, err := strconv.Atoi(c.Query("page", "1"))
	if err != nil || page < 1 {
		page = defaultPage
	}

	limit, err := strconv.Atoi(c.Query("limit", "20"))
	if err != nil || limit < 1 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	return page, limit
}

func queryTime(c *fiber.Ctx, key string, endOfDay bool) (*time.Time, error) {
	raw := strings.TrimSpace(c.Query(key))
	if raw == "" {
		return nil, nil
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return &t, nil
	}
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return nil, domain.ErrInvalidDateRange
	}
	if endOfDay {
		t = t.Add(24*time.Hour - time.Nanosecond)
	}
	return &t, nil
}

func queryFloat(c *fiber.Ctx, key string) *float64 {
	raw := strings.TrimSpace(c.Query(key))
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil
	}
	return &v
}

// receiptFilter reads the list filters shared by listing and exports:
// status, low_confidence, search, vendor (repeatable), vendor_id,
// date_from, date_to, min_total, max_total, sort and order.
func receiptFilter(c *fiber.Ctx) (domain.ReceiptFilter, error) {
	filter := domain.ReceiptFilter{
		Status:        c.Query("status", "all"),
		LowConfidence: c.QueryBool("low_confidence", false),
		Search:        c.Query("search"),
		VendorID:      c.Query("vendor_id"),
		MinTotal:      queryFloat(c, "min_total"),
		MaxTotal:      queryFloat(c, "max_total"),
		SortBy:        c.Query("sort", "date_time"),
		SortDesc:      strings.ToLower(c.Query("order", "desc")) != "asc",
	}

	switch filter.Status {
	case "all", domain.StatusDraft, domain.StatusVerified:
	default:
		return filter, domain.ErrInvalidStatus
	}

	for _, v := range c.Context().QueryArgs().PeekMulti("vendor") {
		if name := strings.TrimSpace(string(v)); name != "" {
			filter.Vendors = append(filter.Vendors, name)
		}
	}

	var err error
	if filter.DateFrom, err = queryTime(c, "date_from", false); err != nil {
		return filter, err
	}
	if filter.DateTo, err = queryTime(c, "date_to", true); err != nil {
		return filter, err
	}
	if filter.DateFrom != nil && filter.DateTo != nil && filter.DateTo.Before(*filter.DateFrom) {
		return filter, domain.ErrInvalidDateRange
	}
	return filter, nil
}
