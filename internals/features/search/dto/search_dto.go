package dto

// SearchResultItem: record hasil pencarian + tag tipe (singular).
// Field record di-flatten ke level atas supaya bentuknya sama dengan
// response list biasa.
type SearchResultItem map[string]interface{}
