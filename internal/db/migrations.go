package db

import (
	"database/sql"
	"fmt"
)

// Base schema - uses Snowflake IDs (no AUTOINCREMENT). Content tables are
// written by the external admin workflow; this engine only reads them.
const baseSchema = `
CREATE TABLE IF NOT EXISTS translations (
  id INTEGER PRIMARY KEY,
  language TEXT NOT NULL,
  group_name TEXT,
  key TEXT NOT NULL,
  value TEXT NOT NULL,
  is_active INTEGER NOT NULL DEFAULT 1,
  created_at TEXT NOT NULL,
  updated_at TEXT NOT NULL,
  UNIQUE(language, group_name, key)
);

CREATE INDEX IF NOT EXISTS idx_translations_key ON translations(key);

CREATE TABLE IF NOT EXISTS cases (
  id INTEGER PRIMARY KEY,
  slug TEXT NOT NULL UNIQUE,
  title_key TEXT NOT NULL,
  description_key TEXT,
  date TEXT,
  is_active INTEGER NOT NULL DEFAULT 1,
  is_featured INTEGER NOT NULL DEFAULT 0,
  sort_order INTEGER NOT NULL DEFAULT 0,
  created_at TEXT NOT NULL,
  updated_at TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS stories (
  id INTEGER PRIMARY KEY,
  slug TEXT NOT NULL UNIQUE,
  title_key TEXT NOT NULL,
  excerpt_key TEXT,
  body_key TEXT,
  date TEXT,
  is_active INTEGER NOT NULL DEFAULT 1,
  is_featured INTEGER NOT NULL DEFAULT 0,
  sort_order INTEGER NOT NULL DEFAULT 0,
  created_at TEXT NOT NULL,
  updated_at TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS testimonies (
  id INTEGER PRIMARY KEY,
  slug TEXT NOT NULL UNIQUE,
  title_key TEXT NOT NULL,
  content_key TEXT NOT NULL,
  witness_name_key TEXT,
  location_key TEXT,
  date TEXT,
  is_active INTEGER NOT NULL DEFAULT 1,
  is_featured INTEGER NOT NULL DEFAULT 0,
  sort_order INTEGER NOT NULL DEFAULT 0,
  created_at TEXT NOT NULL,
  updated_at TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS aid_organizations (
  id INTEGER PRIMARY KEY,
  slug TEXT NOT NULL UNIQUE,
  type TEXT NOT NULL,
  name_key TEXT NOT NULL,
  description_key TEXT,
  website_url TEXT,
  donation_url TEXT,
  is_active INTEGER NOT NULL DEFAULT 1,
  is_featured INTEGER NOT NULL DEFAULT 0,
  sort_order INTEGER NOT NULL DEFAULT 0,
  created_at TEXT NOT NULL,
  updated_at TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS categories (
  id INTEGER PRIMARY KEY,
  slug TEXT NOT NULL UNIQUE,
  name_key TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS organization_categories (
  organization_id INTEGER NOT NULL,
  category_id INTEGER NOT NULL,
  PRIMARY KEY (organization_id, category_id),
  FOREIGN KEY (organization_id) REFERENCES aid_organizations(id) ON DELETE CASCADE,
  FOREIGN KEY (category_id) REFERENCES categories(id) ON DELETE CASCADE
);

CREATE TABLE IF NOT EXISTS home_sections (
  id INTEGER PRIMARY KEY,
  section_type TEXT NOT NULL,
  title_key TEXT,
  subtitle_key TEXT,
  button_text_key TEXT,
  button_url TEXT,
  sort_order INTEGER NOT NULL DEFAULT 0,
  is_active INTEGER NOT NULL DEFAULT 1,
  created_at TEXT NOT NULL,
  updated_at TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS media (
  id INTEGER PRIMARY KEY,
  owner_type TEXT NOT NULL,
  owner_id INTEGER NOT NULL,
  provider TEXT NOT NULL,
  reference TEXT NOT NULL,
  alt_key TEXT,
  sort_order INTEGER NOT NULL DEFAULT 0,
  is_active INTEGER NOT NULL DEFAULT 1,
  created_at TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_media_owner ON media(owner_type, owner_id);

CREATE TABLE IF NOT EXISTS timeline_events (
  id INTEGER PRIMARY KEY,
  title_key TEXT NOT NULL,
  description_key TEXT,
  date TEXT NOT NULL,
  sort_order INTEGER NOT NULL DEFAULT 0,
  is_active INTEGER NOT NULL DEFAULT 1,
  created_at TEXT NOT NULL,
  updated_at TEXT NOT NULL
);
`

func Migrate(db *sql.DB) error {
	if _, err := db.Exec(baseSchema); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}
	return nil
}
