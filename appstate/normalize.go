package appstate

import (
	"github.com/domonda/go-datatable"
)

// Flattened keys added to every explorer record.
const (
	KeyIcon              = "icon"
	KeyRegistryProjectID = "registry_project_id"
	KeyProjectName       = "project_name"
	KeyVintageYear       = "vintage_year"
	KeyAction            = "action"
	KeyQuantity          = "quantity"
	KeyDatetime          = "datetime"
)

// ExplorerHeadings are the columns of the explorer table.
var ExplorerHeadings = datatable.Headings{
	KeyIcon,
	KeyRegistryProjectID,
	KeyProjectName,
	KeyVintageYear,
	KeyAction,
	KeyQuantity,
	KeyDatetime,
}

// NormalizeExplorerData flattens the nested fields of raw
// explorer payload items into the keys used by ExplorerHeadings.
//
// Every raw top-level key is kept. Missing or malformed
// nested objects result in nil values which are rendered
// with the no-value placeholder, the function never fails.
// The payload is not modified and a nil payload
// results in an empty, non-nil slice.
func NormalizeExplorerData(payload []map[string]any) []datatable.Record {
	records := make([]datatable.Record, len(payload))
	for i, item := range payload {
		records[i] = normalizeExplorerItem(item)
	}
	return records
}

func normalizeExplorerItem(item map[string]any) datatable.Record {
	record := make(datatable.Record, len(item)+7)
	for key, value := range item {
		record[key] = value
	}
	record[KeyIcon] = nested(item, "cw_org", "icon")
	// The registry project id column shows the project name
	// and the project name column the project id.
	record[KeyRegistryProjectID] = nested(item, "cw_project", "projectName")
	record[KeyProjectName] = nested(item, "cw_project", "projectId")
	record[KeyVintageYear] = nested(item, "cw_unit", "vintageYear")
	record[KeyAction] = item["mode"]
	record[KeyQuantity] = item["amount"]
	record[KeyDatetime] = item["timestamp"]
	return record
}

// nested returns item[object][field] or nil
// if the object is missing or not a JSON object.
func nested(item map[string]any, object, field string) any {
	switch obj := item[object].(type) {
	case map[string]any:
		return obj[field]
	case datatable.Record:
		return obj[field]
	}
	return nil
}
