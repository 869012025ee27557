package xpath

import (
  "fmt"
  "strings"

  "github.com/antchfx/htmlquery"
  "golang.org/x/net/html"
)

type HtmlDocument struct {
  Node *html.Node
  Url  string
}

func ParseHtmlDoc(url, content string) (*HtmlDocument, error) {
  node, err := htmlquery.Parse(strings.NewReader(content))
  if err != nil {
    return nil, fmt.Errorf("htmlquery.Parse: %w", err)
  }

  return &HtmlDocument{
    Node: node,
    Url:  url,
  }, nil
}

func HandleElement(doc *HtmlDocument, xpath string, handler func(*html.Node)) {
  nodes := htmlquery.Find(doc.Node, xpath)

  for _, node := range nodes {
    if node == nil {
      continue
    }
    handler(node)
  }
}

func FindElement(doc *HtmlDocument, xpath string, handler func(node *html.Node) bool) (*html.Node, bool) {
  nodes := CollectElements(doc, xpath)

  for _, node := range nodes {
    if node == nil {
      continue
    }
    if handler(node) {
      return node, true
    }
  }

  return nil, false
}

func CollectElements(doc *HtmlDocument, xpath string) []*html.Node {
  var nodes []*html.Node

  HandleElement(doc, xpath, func(n *html.Node) {
    nodes = append(nodes, n)
  })

  return nodes
}

// FirstText returns the inner text of the first node matched by any of the
// expressions, tried in order.
func FirstText(doc *HtmlDocument, xpaths ...string) (string, bool) {
  for _, xpath := range xpaths {
    node, ok := FindElement(doc, xpath, func(node *html.Node) bool {
      return true
    })
    if ok {
      return htmlquery.InnerText(node), true
    }
  }
  return "", false
}
