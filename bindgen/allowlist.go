package bindgen

import "sort"

// Allowlist names the native declarations the generator binds. Nothing
// outside the list is ever emitted; an entry missing from the
// configured headers is fatal.
type Allowlist struct {
	// Structs are typedef names ("ngx_str_t") or tagged spellings
	// ("struct ngx_buf_s").
	Structs []string
	// Funcs are prototype names.
	Funcs []string
	// Vars are extern variable names.
	Vars []string
	// Consts are object-like macro names. Values are resolved by the
	// probe, so expression macros such as the conf offsets work.
	Consts []string
}

func (a Allowlist) sorted() Allowlist {
	s := Allowlist{
		Structs: append([]string(nil), a.Structs...),
		Funcs:   append([]string(nil), a.Funcs...),
		Vars:    append([]string(nil), a.Vars...),
		Consts:  append([]string(nil), a.Consts...),
	}
	sort.Strings(s.Structs)
	sort.Strings(s.Funcs)
	sort.Strings(s.Vars)
	sort.Strings(s.Consts)
	return s
}

// Default returns the allow-list behind the checked-in ffi package:
// the core types, the pool and buffer functions, the http entry points
// used by the module framework, and the status, log level and
// configuration constants.
func Default() Allowlist {
	return Allowlist{
		Structs: []string{
			"ngx_str_t",
			"ngx_buf_t",
			"ngx_chain_t",
			"ngx_array_t",
			"ngx_list_t",
			"ngx_list_part_t",
			"ngx_queue_t",
			"ngx_table_elt_t",
			"ngx_variable_value_t",
			"ngx_pool_t",
			"ngx_pool_cleanup_t",
			"ngx_log_t",
			"ngx_module_t",
			"ngx_command_t",
			"ngx_conf_t",
			"ngx_cycle_t",
			"ngx_event_t",
			"ngx_shm_t",
			"ngx_shm_zone_t",
			"ngx_slab_pool_t",
			"ngx_rbtree_node_t",
			"ngx_http_module_t",
			"ngx_http_conf_ctx_t",
			"ngx_http_request_t",
			"ngx_http_headers_in_t",
			"ngx_http_headers_out_t",
		},
		Funcs: []string{
			"ngx_palloc",
			"ngx_pnalloc",
			"ngx_pcalloc",
			"ngx_pfree",
			"ngx_pool_cleanup_add",
			"ngx_create_temp_buf",
			"ngx_array_create",
			"ngx_array_push",
			"ngx_list_push",
			"ngx_log_error_core",
			"ngx_event_add_timer",
			"ngx_event_del_timer",
			"ngx_shared_memory_add",
			"ngx_slab_alloc",
			"ngx_slab_alloc_locked",
			"ngx_slab_free_locked",
			"ngx_http_subrequest",
			"ngx_http_internal_redirect",
			"ngx_http_send_header",
			"ngx_http_output_filter",
			"ngx_http_discard_request_body",
			"ngx_http_finalize_request",
		},
		Vars: []string{
			"ngx_cycle",
		},
		Consts: []string{
			"NGX_OK",
			"NGX_ERROR",
			"NGX_AGAIN",
			"NGX_BUSY",
			"NGX_DONE",
			"NGX_DECLINED",
			"NGX_ABORT",
			"NGX_LOG_STDERR",
			"NGX_LOG_EMERG",
			"NGX_LOG_ALERT",
			"NGX_LOG_CRIT",
			"NGX_LOG_ERR",
			"NGX_LOG_WARN",
			"NGX_LOG_NOTICE",
			"NGX_LOG_INFO",
			"NGX_LOG_DEBUG",
			"NGX_CONF_NOARGS",
			"NGX_CONF_TAKE1",
			"NGX_CONF_TAKE2",
			"NGX_CONF_TAKE3",
			"NGX_CONF_1MORE",
			"NGX_CONF_2MORE",
			"NGX_CONF_FLAG",
			"NGX_CONF_ANY",
			"NGX_CONF_UNSET",
			"NGX_HTTP_MAIN_CONF",
			"NGX_HTTP_SRV_CONF",
			"NGX_HTTP_LOC_CONF",
			"NGX_HTTP_MAIN_CONF_OFFSET",
			"NGX_HTTP_SRV_CONF_OFFSET",
			"NGX_HTTP_LOC_CONF_OFFSET",
			"NGX_HTTP_SUBREQUEST_IN_MEMORY",
			"NGX_HTTP_SUBREQUEST_WAITED",
			"NGX_HTTP_SUBREQUEST_CLONE",
			"NGX_HTTP_SUBREQUEST_BACKGROUND",
		},
	}
}
