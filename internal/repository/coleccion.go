package repository

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"time"
)

// ErrNotFound is returned when an id does not exist in a collection.
// Handlers translate it to 404 with a collection-specific message.
var ErrNotFound = errors.New("registro no encontrado")

// generadorID emits record ids shaped like the millisecond wall clock
// ("1717171717171"). A mutex-guarded high-water mark makes the sequence
// strictly monotonic, so same-millisecond creates get distinct ids and a
// deleted id is never handed out again. Seeded from the highest id already
// on disk at open; uniqueness across restarts assumes the wall clock does
// not jump back past that mark.
type generadorID struct {
	mu     sync.Mutex
	ultimo int64
}

func (g *generadorID) sembrar(id string) {
	n, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		return
	}
	g.mu.Lock()
	if n > g.ultimo {
		g.ultimo = n
	}
	g.mu.Unlock()
}

func (g *generadorID) siguiente() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	ms := time.Now().UnixMilli()
	if ms <= g.ultimo {
		ms = g.ultimo + 1
	}
	g.ultimo = ms
	return strconv.FormatInt(ms, 10)
}

// coleccion is the store for one homogeneous collection persisted as a
// single JSON array file. Reads share the RLock and reread the file each
// call; every mutation holds the write lock for its whole
// read-modify-write cycle, which is what prevents lost updates between
// concurrent requests. The two collections of the app use independent
// coleccion values and never block each other.
type coleccion[T any] struct {
	ruta string
	mu   sync.RWMutex
	ids  generadorID
	id   func(*T) string
}

// abrirColeccion creates the backing file as an empty array on first run
// and seeds the id generator from whatever is already persisted.
func abrirColeccion[T any](ruta string, id func(*T) string) (*coleccion[T], error) {
	c := &coleccion[T]{ruta: ruta, id: id}
	if err := os.MkdirAll(filepath.Dir(ruta), 0o755); err != nil {
		return nil, err
	}
	if _, err := os.Stat(ruta); errors.Is(err, os.ErrNotExist) {
		if err := c.persistir(nil); err != nil {
			return nil, err
		}
	}
	regs := c.leer()
	for i := range regs {
		c.ids.sembrar(id(&regs[i]))
	}
	return c, nil
}

// leer returns the persisted array. A missing or unparsable file reads as
// an empty collection — never as an error for the caller.
func (c *coleccion[T]) leer() []T {
	data, err := os.ReadFile(c.ruta)
	if err != nil {
		return nil
	}
	var regs []T
	if err := json.Unmarshal(data, &regs); err != nil {
		return nil
	}
	return regs
}

// persistir fully rewrites the collection file. The write goes to a temp
// file in the same directory and is renamed over the destination, so a
// crash mid-write can never leave a half-written array behind.
func (c *coleccion[T]) persistir(regs []T) error {
	if regs == nil {
		regs = []T{}
	}
	data, err := json.MarshalIndent(regs, "", "  ")
	if err != nil {
		return err
	}
	tmp, err := os.CreateTemp(filepath.Dir(c.ruta), filepath.Base(c.ruta)+".tmp-*")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), c.ruta)
}

func (c *coleccion[T]) listar() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	regs := c.leer()
	if regs == nil {
		regs = []T{}
	}
	return regs
}

func (c *coleccion[T]) obtener(id string) (*T, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	regs := c.leer()
	for i := range regs {
		if c.id(&regs[i]) == id {
			return &regs[i], nil
		}
	}
	return nil, ErrNotFound
}

// mutar runs fn over the current collection under the write lock and
// persists the result. fn errors abort without touching the file.
func (c *coleccion[T]) mutar(fn func(regs []T) ([]T, *T, error)) (*T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	regs, res, err := fn(c.leer())
	if err != nil {
		return nil, err
	}
	if err := c.persistir(regs); err != nil {
		return nil, err
	}
	return res, nil
}
