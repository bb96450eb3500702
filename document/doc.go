// Package document implements the metadata interfaces with plain structs
// decoded from YAML, JSON or TOML documents.
//
// All three formats share one schema whose property names follow the ISO
// 19115 XML encoding (title, date, citedResponsibleParty, geographicElement,
// ...). Localized text is either a plain string or an object mapping BCP 47
// language tags to translations:
//
//	title:
//	  und: Sea surface temperature
//	  fr: Température de surface de la mer
//
// Elements implementing several capabilities are recognised from the
// properties they carry. A geographic element with bounds and a polygon is
// both a GeographicBoundingBox and a BoundingPolygon; a party with a position
// name is an Individual; a result with a pass flag is a ConformanceResult.
package document
