package config

import (
  "fmt"
  "os"

  set "github.com/deckarep/golang-set/v2"
  "github.com/go-playground/validator/v10"
  "github.com/ushakovn/instock/internal/models"
  rules "github.com/ushakovn/instock/pkg/validator"
  "gopkg.in/yaml.v3"
)

const inventoryURL = "https://api.store.nvidia.com/partner/v1/feinventory?skus="

func DefaultCatalog() models.Catalog {
  return models.Catalog{
    Products: []models.Product{
      {Name: "RTX 5090", QueryURL: inventoryURL + "NVGFT590"},
      {Name: "RTX 5080", QueryURL: inventoryURL + "NVGFT580"},
      {Name: "RTX 5070 Ti", QueryURL: inventoryURL + "NVGFT570T"},
      {Name: "RTX 5070", QueryURL: inventoryURL + "NVGFT570"},
      {Name: "RTX 4090", QueryURL: inventoryURL + "NVGFT490"},
      {Name: "RTX 4080 SUPER", QueryURL: inventoryURL + "NVGFT480S"},
      {Name: "RTX 4070 SUPER", QueryURL: inventoryURL + "NVGFT470S"},
    },
    Locales: []models.Locale{
      "sv-se",
      "es-es",
    },
  }
}

func LoadCatalog(path string) (*models.Catalog, error) {
  data, err := os.ReadFile(path)
  if err != nil {
    return nil, fmt.Errorf("cannot read %s: %w", path, err)
  }

  var catalog models.Catalog

  if err = yaml.Unmarshal(data, &catalog); err != nil {
    return nil, fmt.Errorf("cannot parse %s: %w", path, err)
  }

  return &catalog, nil
}

func ValidateCatalog(catalog models.Catalog) error {
  if err := validator.New().Struct(catalog); err != nil {
    return err
  }
  names := set.NewSet[string]()

  for _, product := range catalog.Products {
    if !names.Add(product.Name) {
      return fmt.Errorf("duplicate product name: %q", product.Name)
    }
    if err := rules.URL(product.QueryURL); err != nil {
      return fmt.Errorf("product %q: invalid query url: %w", product.Name, err)
    }
  }

  for _, locale := range catalog.Locales {
    if err := rules.Locale(locale); err != nil {
      return fmt.Errorf("invalid locale %q: %w", locale, err)
    }
  }

  return nil
}
