package seeder

import "certtrack/internal/catalog"

func Defaults(doc catalog.Document) []Seeder {
	return []Seeder{
		CatalogSeeder{Doc: doc},
	}
}
