// form/resolver.go
package form

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/sellora/backoffice/cache"
	"github.com/sellora/backoffice/models"
)

// CategoryAPI fetches the flat category listing for one item type.
type CategoryAPI interface {
	FetchCategories(ctx context.Context, itemType models.ItemType) ([]models.Category, error)
}

// CategoryResolver loads the category tree for the current item type and
// matches a draft's saved category ids against it. Resolution is one-shot
// per editing session: once it has run, or once the user touches the
// category fields, a late tree load can no longer overwrite the selection.
type CategoryResolver struct {
	api   CategoryAPI
	cache *cache.TTLCache
	log   *logrus.Entry

	mtx      sync.Mutex
	resolved bool
}

func NewCategoryResolver(api CategoryAPI, treeCache *cache.TTLCache) *CategoryResolver {
	return &CategoryResolver{
		api:   api,
		cache: treeCache,
		log:   logrus.WithField("component", "category_resolver"),
	}
}

// LoadTree returns the one-level category tree for itemType, reshaping the
// flat listing into parents carrying their children. Trees are cached per
// type; products and services have disjoint trees.
func (r *CategoryResolver) LoadTree(ctx context.Context, itemType models.ItemType) ([]models.CategoryNode, error) {
	key := "categories:" + string(itemType)
	if cached, ok := r.cache.Get(key); ok {
		return cached.([]models.CategoryNode), nil
	}

	flat, err := r.api.FetchCategories(ctx, itemType)
	if err != nil {
		// Non-fatal: selection stays empty, catalogs evolve.
		r.log.WithError(err).WithField("item_type", itemType).Warn("Category fetch failed")
		return nil, err
	}

	tree := buildTree(flat)
	r.cache.Set(key, tree)

	return tree, nil
}

// ResolveSelection finds the parent node for a saved category id. When the
// saved id is itself a child, the parent owning it is returned along with
// the child. A saved category missing from the fresh tree resets the
// selection to empty.
func (r *CategoryResolver) ResolveSelection(tree []models.CategoryNode, categoryID, childID uuid.UUID) (uuid.UUID, uuid.UUID) {
	for _, node := range tree {
		if node.ID == categoryID {
			for _, child := range node.Children {
				if child.ID == childID {
					return node.ID, child.ID
				}
			}
			return node.ID, uuid.Nil
		}

		for _, child := range node.Children {
			if child.ID == categoryID {
				return node.ID, child.ID
			}
		}
	}

	return uuid.Nil, uuid.Nil
}

// ResolveOnce applies ResolveSelection to the controller's saved ids,
// gated on not having resolved this session yet.
func (r *CategoryResolver) ResolveOnce(tree []models.CategoryNode, c *FormController) {
	r.mtx.Lock()
	if r.resolved {
		r.mtx.Unlock()
		return
	}
	r.resolved = true
	r.mtx.Unlock()

	c.CategoryID, c.ChildCategoryID = r.ResolveSelection(tree, c.CategoryID, c.ChildCategoryID)
	c.Categories = tree
}

// MarkResolved preempts a pending resolution after a manual category edit.
func (r *CategoryResolver) MarkResolved() {
	r.mtx.Lock()
	r.resolved = true
	r.mtx.Unlock()
}

// Reset re-arms resolution for a new session or an item type change.
func (r *CategoryResolver) Reset() {
	r.mtx.Lock()
	r.resolved = false
	r.mtx.Unlock()
}

func buildTree(flat []models.Category) []models.CategoryNode {
	var parents []models.CategoryNode
	index := make(map[uuid.UUID]int)

	for _, cat := range flat {
		if cat.ParentID == uuid.Nil {
			index[cat.ID] = len(parents)
			parents = append(parents, models.CategoryNode{ID: cat.ID, Name: cat.Name})
		}
	}

	// One level only: entries whose parent is not a top-level node are dropped.
	for _, cat := range flat {
		if cat.ParentID == uuid.Nil {
			continue
		}
		if i, ok := index[cat.ParentID]; ok {
			parents[i].Children = append(parents[i].Children,
				models.CategoryNode{ID: cat.ID, Name: cat.Name})
		}
	}

	return parents
}
