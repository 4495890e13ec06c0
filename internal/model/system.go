package model

import "time"

// PriceSnapshot is the current price mapping together with its refresh time.
type PriceSnapshot struct {
	Prices      PriceMap  `json:"prices"`
	LastUpdated time.Time `json:"lastUpdated"`
}

// VersionInfo reports the running application and schema versions.
type VersionInfo struct {
	AppVersion string `json:"appVersion"`
	DbVersion  string `json:"dbVersion"`
}
