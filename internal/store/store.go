package store

import (
	"sync"

	"github.com/Abbosbek-cloud/e-commerse/internal/models"
)

// State 店铺状态快照
type State struct {
	Catalog       []models.Item       `json:"catalog"`
	Basket        []models.BasketLine `json:"basket"`
	Loading       bool                `json:"loading"`
	BasketVisible bool                `json:"basket_visible"`
}

// Store 目录与购物篮状态的唯一写入方。
// 所有变更经由互斥锁串行执行，每个操作对外表现为原子状态迁移。
// 生命周期与进程一致，不做持久化。
type Store struct {
	mu            sync.Mutex
	catalog       []models.Item
	basket        []models.BasketLine
	loading       bool
	basketVisible bool
}

// New 创建初始状态的 Store（目录加载中、购物篮为空且隐藏）
func New() *Store {
	return &Store{
		catalog: []models.Item{},
		basket:  []models.BasketLine{},
		loading: true,
	}
}

// SetCatalog 替换目录并结束加载状态
func (s *Store) SetCatalog(items []models.Item) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.catalog = append([]models.Item{}, items...)
	s.loading = false
}

// AddItem 加入购物篮：已存在的行数量加一，否则按插入顺序追加一行
func (s *Store) AddItem(itemID, name string, price models.Money) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.basket {
		if s.basket[i].ItemID == itemID {
			s.basket[i].Quantity++
			return
		}
	}
	s.basket = append(s.basket, models.BasketLine{
		ItemID:   itemID,
		Name:     name,
		Price:    price,
		Quantity: 1,
	})
}

// Increment 指定行数量加一，行不存在时静默忽略
func (s *Store) Increment(itemID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.basket {
		if s.basket[i].ItemID == itemID {
			s.basket[i].Quantity++
			return
		}
	}
}

// Decrement 指定行数量减一，减到 0 时整行移除；行不存在时静默忽略
func (s *Store) Decrement(itemID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.basket {
		if s.basket[i].ItemID != itemID {
			continue
		}
		if s.basket[i].Quantity > 1 {
			s.basket[i].Quantity--
			return
		}
		s.basket = append(s.basket[:i], s.basket[i+1:]...)
		return
	}
}

// RemoveItem 无条件移除指定行，行不存在时静默忽略
func (s *Store) RemoveItem(itemID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.basket {
		if s.basket[i].ItemID == itemID {
			s.basket = append(s.basket[:i], s.basket[i+1:]...)
			return
		}
	}
}

// ToggleBasketVisible 切换购物篮可见性
func (s *Store) ToggleBasketVisible() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.basketVisible = !s.basketVisible
}

// Catalog 返回目录副本
func (s *Store) Catalog() []models.Item {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Item{}, s.catalog...)
}

// Basket 返回购物篮副本（保持插入顺序）
func (s *Store) Basket() []models.BasketLine {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.BasketLine{}, s.basket...)
}

// Loading 目录是否仍在加载
func (s *Store) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

// BasketVisible 购物篮是否可见
func (s *Store) BasketVisible() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.basketVisible
}

// Snapshot 返回一致的整体状态快照
func (s *Store) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return State{
		Catalog:       append([]models.Item{}, s.catalog...),
		Basket:        append([]models.BasketLine{}, s.basket...),
		Loading:       s.loading,
		BasketVisible: s.basketVisible,
	}
}
