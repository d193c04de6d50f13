package patch

import (
	"errors"
	"strings"
	"testing"
)

const aggregator = `import { Module } from '@nestjs/common';
import { AppController } from './app.controller';
import { AppService } from './app.service';

@Module({
  imports: [],
  controllers: [AppController],
  providers: [AppService],
})
export class AppModule {}
`

const invoiceImport = "import { InvoiceModule } from './invoices/invoice.module';"

func TestPatchEmptyList(t *testing.T) {
	got, err := Patch(aggregator, invoiceImport, "InvoiceModule")
	if err != nil {
		t.Fatalf("Patch error: %v", err)
	}
	if !strings.Contains(got, "imports: [InvoiceModule]") {
		t.Errorf("registration entry missing:\n%s", got)
	}
	if !strings.Contains(got, invoiceImport) {
		t.Errorf("import line missing:\n%s", got)
	}
	// The import lands after the last existing import statement.
	appService := strings.Index(got, "./app.service")
	invoice := strings.Index(got, "./invoices/invoice.module")
	if invoice < appService {
		t.Errorf("import inserted before existing imports:\n%s", got)
	}
}

func TestPatchNonEmptyList(t *testing.T) {
	first, err := Patch(aggregator, invoiceImport, "InvoiceModule")
	if err != nil {
		t.Fatalf("first Patch error: %v", err)
	}

	productImport := "import { ProductModule } from './products/product.module';"
	second, err := Patch(first, productImport, "ProductModule")
	if err != nil {
		t.Fatalf("second Patch error: %v", err)
	}
	if !strings.Contains(second, "imports: [ProductModule, InvoiceModule]") {
		t.Errorf("new entry should prepend inside the list:\n%s", second)
	}
}

func TestPatchIdempotent(t *testing.T) {
	once, err := Patch(aggregator, invoiceImport, "InvoiceModule")
	if err != nil {
		t.Fatalf("Patch error: %v", err)
	}
	twice, err := Patch(once, invoiceImport, "InvoiceModule")
	if err != nil {
		t.Fatalf("repeat Patch error: %v", err)
	}
	if twice != once {
		t.Errorf("repeat patch changed the text:\nfirst:\n%s\nsecond:\n%s", once, twice)
	}
	if strings.Count(twice, "InvoiceModule") != 2 { // one import, one entry
		t.Errorf("identifier duplicated:\n%s", twice)
	}
}

func TestPatchMonotonic(t *testing.T) {
	got, err := Patch(aggregator, invoiceImport, "InvoiceModule")
	if err != nil {
		t.Fatalf("Patch error: %v", err)
	}
	for _, kept := range []string{
		"import { Module } from '@nestjs/common';",
		"import { AppController } from './app.controller';",
		"controllers: [AppController]",
		"providers: [AppService]",
		"export class AppModule {}",
	} {
		if !strings.Contains(got, kept) {
			t.Errorf("pre-existing content %q was lost:\n%s", kept, got)
		}
	}
}

func TestPatchAnchorNotFound(t *testing.T) {
	text := "import { Module } from '@nestjs/common';\n\nexport class AppModule {}\n"
	got, err := Patch(text, invoiceImport, "InvoiceModule")
	if !errors.Is(err, ErrAnchorNotFound) {
		t.Fatalf("err = %v, want ErrAnchorNotFound", err)
	}
	// The import is still inserted so a manual fix only needs the entry.
	if !strings.Contains(got, invoiceImport) {
		t.Errorf("import line missing from degraded result:\n%s", got)
	}
}

func TestPatchNoImports(t *testing.T) {
	text := "@Module({\n  imports: [],\n})\nexport class AppModule {}\n"
	got, err := Patch(text, invoiceImport, "InvoiceModule")
	if err != nil {
		t.Fatalf("Patch error: %v", err)
	}
	if !strings.HasPrefix(got, invoiceImport+"\n") {
		t.Errorf("import should open the file when no import block exists:\n%s", got)
	}
	if !strings.Contains(got, "imports: [InvoiceModule]") {
		t.Errorf("registration entry missing:\n%s", got)
	}
}

func TestPatchWhitespaceOnlyList(t *testing.T) {
	text := "import { Module } from '@nestjs/common';\n\n@Module({\n  imports: [\n  ],\n})\n"
	got, err := Patch(text, invoiceImport, "InvoiceModule")
	if err != nil {
		t.Fatalf("Patch error: %v", err)
	}
	if !strings.Contains(got, "imports: [InvoiceModule],") {
		t.Errorf("whitespace-only list should collapse to one entry:\n%s", got)
	}
}
