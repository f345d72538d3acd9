// go-query-builder — SQL ifadelerini programatik olarak ve akıcı (fluent)
// bir arayüzle oluşturan kütüphane.
//
// Yazar: Ahmet ALTUN
// Github: github.com/biyonik
// LinkedIn: linkedin.com/in/biyonik
// Email: ahmet.altun60@gmail.com

package querybuilder

// Version, go-query-builder kütüphanesinin mevcut sürümünü belirtir.
const Version = "0.1.0"
