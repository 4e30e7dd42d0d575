// Package domain defines the core business entities of the catalog API:
// users and the catalog records (authors, categories, subcategories,
// currencies). Entities validate themselves; persistence and transport
// concerns live elsewhere.
package domain
