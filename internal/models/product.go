package models

type Locale = string

type Product struct {
  Name     string `yaml:"name" json:"name" validate:"required"`
  QueryURL string `yaml:"query_url" json:"query_url" validate:"required,url"`
}

type Catalog struct {
  Products []Product `yaml:"products" json:"products" validate:"required,min=1,dive"`
  Locales  []Locale  `yaml:"locales" json:"locales" validate:"required,min=1,dive,required"`
}
