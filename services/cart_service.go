package services

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/redis/go-redis/v9"

	"marketplace/config"
	"marketplace/models"
)

const cartKeyPrefix = "cart:"

// CartStore is the persistence behind a device-scoped cart: one
// serialized value per cart key. Get returns "" when no value exists.
type CartStore interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Del(ctx context.Context, key string) error
}

type RedisCartStore struct{}

func (s *RedisCartStore) Get(ctx context.Context, key string) (string, error) {
	if config.RedisClient == nil {
		return "", errors.New("cart storage unavailable")
	}
	val, err := config.RedisClient.Get(ctx, key).Result()
	if err == redis.Nil {
		return "", nil
	}
	return val, err
}

func (s *RedisCartStore) Set(ctx context.Context, key, value string) error {
	if config.RedisClient == nil {
		return errors.New("cart storage unavailable")
	}
	return config.RedisClient.Set(ctx, key, value, 0).Err()
}

func (s *RedisCartStore) Del(ctx context.Context, key string) error {
	if config.RedisClient == nil {
		return errors.New("cart storage unavailable")
	}
	return config.RedisClient.Del(ctx, key).Err()
}

// CartService keeps the line items for one device's cart. A cart never
// holds two lines for the same product: adds merge into the existing
// line. Carts are scoped to the client-held cart key and never merged
// across devices.
type CartService struct {
	store CartStore
}

func NewCartService() *CartService {
	return &CartService{store: &RedisCartStore{}}
}

func NewCartServiceWithStore(store CartStore) *CartService {
	return &CartService{store: store}
}

// Load returns the persisted cart, or an empty cart when nothing is
// stored or the stored value is unreadable. It never fails.
func (s *CartService) Load(ctx context.Context, cartKey string) []models.CartLineItem {
	raw, err := s.store.Get(ctx, cartKeyPrefix+cartKey)
	if err != nil || raw == "" {
		return []models.CartLineItem{}
	}

	var items []models.CartLineItem
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		// Structurally incompatible stored value reads as an empty cart.
		return []models.CartLineItem{}
	}
	return items
}

func (s *CartService) save(ctx context.Context, cartKey string, items []models.CartLineItem) error {
	raw, err := json.Marshal(items)
	if err != nil {
		return err
	}
	return s.store.Set(ctx, cartKeyPrefix+cartKey, string(raw))
}

// AddOrIncrement merges the item into an existing line for the same
// product, or appends a new line. Quantity defaults to 1.
func (s *CartService) AddOrIncrement(ctx context.Context, cartKey string, item models.CartLineItem) ([]models.CartLineItem, error) {
	if item.Quantity < 1 {
		item.Quantity = 1
	}

	items := s.Load(ctx, cartKey)
	found := false
	for i := range items {
		if items[i].ProductID == item.ProductID {
			items[i].Quantity += item.Quantity
			found = true
			break
		}
	}
	if !found {
		items = append(items, item)
	}

	if err := s.save(ctx, cartKey, items); err != nil {
		return nil, err
	}
	return items, nil
}

// SetQuantity clamps to a minimum of 1. Dropping a line is an explicit
// Remove, never a side effect of a quantity update.
func (s *CartService) SetQuantity(ctx context.Context, cartKey, productID string, quantity int) ([]models.CartLineItem, error) {
	if quantity < 1 {
		quantity = 1
	}

	items := s.Load(ctx, cartKey)
	for i := range items {
		if items[i].ProductID == productID {
			items[i].Quantity = quantity
			break
		}
	}

	if err := s.save(ctx, cartKey, items); err != nil {
		return nil, err
	}
	return items, nil
}

func (s *CartService) Remove(ctx context.Context, cartKey, productID string) ([]models.CartLineItem, error) {
	items := s.Load(ctx, cartKey)
	kept := items[:0]
	for _, item := range items {
		if item.ProductID != productID {
			kept = append(kept, item)
		}
	}

	if err := s.save(ctx, cartKey, kept); err != nil {
		return nil, err
	}
	return kept, nil
}

func (s *CartService) Clear(ctx context.Context, cartKey string) error {
	return s.store.Del(ctx, cartKeyPrefix+cartKey)
}

// CartTotal is computed fresh on every call, never cached.
func CartTotal(items []models.CartLineItem) float64 {
	total := 0.0
	for _, item := range items {
		total += item.Price * float64(item.Quantity)
	}
	return total
}
