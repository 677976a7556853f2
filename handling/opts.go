package handling

import (
	"net/http"
	"photomagnet_server/lib"
	"photomagnet_server/structs"
	"photomagnet_server/structs/tables"
	"strconv"
	"strings"
)

// ParseOrderListOptions reads status, limit and skip from the query string.
// Defaults are applied by the order service.
func ParseOrderListOptions(r *http.Request) (structs.OrderListOptions, error) {
	query := r.URL.Query()
	opts := structs.OrderListOptions{}

	if len(query) == 0 {
		return opts, nil
	}

	if status := strings.ToLower(strings.TrimSpace(query.Get("status"))); status != "" && status != "all" {
		opts.Status = tables.OrderStatus(status)
		if !opts.Status.Valid() {
			return opts, lib.Validationf("Invalid status %q", status)
		}
	}

	if limit := query.Get("limit"); limit != "" {
		val, err := strconv.Atoi(limit)
		if err != nil || val < 0 {
			return opts, lib.Validationf("limit must be a non-negative integer")
		}
		opts.Limit = val
	}

	if skip := query.Get("skip"); skip != "" {
		val, err := strconv.Atoi(skip)
		if err != nil || val < 0 {
			return opts, lib.Validationf("skip must be a non-negative integer")
		}
		opts.Skip = val
	}

	return opts, nil
}
